package convert

import (
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// AuthorityRelated converts the "Related Authorities" field of
// authority records: authority-to-authority links that carry the SKOS
// structure of the vocabulary (broader/narrower/related terms, USE
// cross-references, institutional hierarchy).
type AuthorityRelated struct {
	cls relation.Classifier
}

// NewAuthorityRelated returns a converter minting authority URIs under
// baseURI.
func NewAuthorityRelated(baseURI string) AuthorityRelated {
	return AuthorityRelated{
		cls: relation.NewClassifier(relation.Authority, baseURI),
	}
}

// Field returns the source column name.
func (c AuthorityRelated) Field() string { return "Related Authorities" }

// Convert parses the composite field and projects the relationship
// groups onto SKOS properties. Blank input yields an empty fragment.
func (c AuthorityRelated) Convert(raw, recordID string) jsonld.Fragment {
	entries := relation.ParseEntries(raw, recordID)
	rels := c.cls.Relationships(entries, recordID)
	if len(rels) == 0 {
		return jsonld.Fragment{}
	}

	b := jsonld.NewBuilder()
	b.Set("isiscb:relatedAuthorities", authorityWrappers(rels))

	bucket := relation.Group(rels)
	handled := make(map[string]bool)

	projectHierarchy(b, bucket, handled)
	projectEquivalences(b, bucket, handled)

	// Remaining types keep their registered or synthesized property.
	for _, t := range sortedTypes(bucket) {
		if handled[t] {
			continue
		}
		b.AddAll(vocab.PropertyFor(t), skosObjects(bucket[t]))
	}

	return b.Fragment()
}

// projectHierarchy maps broader/narrower terms and the institutional
// parent/child hierarchy. Institutions land on their own isiscb
// properties and are also merged into skos:broader/skos:narrower.
func projectHierarchy(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	if rels, ok := bucket["BROADER_TERM"]; ok {
		b.AddAll("skos:broader", skosObjects(rels))
		handled["BROADER_TERM"] = true
	}
	if rels, ok := bucket["NARROWER_TERM"]; ok {
		b.AddAll("skos:narrower", skosObjects(rels))
		handled["NARROWER_TERM"] = true
	}
	if rels, ok := bucket["PARENT_INSTITUTION"]; ok {
		objs := skosObjects(rels)
		b.AddAll("isiscb:parentInstitution", objs)
		b.AddAll("skos:broader", objs)
		handled["PARENT_INSTITUTION"] = true
	}
	if rels, ok := bucket["CHILD_INSTITUTION"]; ok {
		objs := skosObjects(rels)
		b.AddAll("isiscb:childInstitution", objs)
		b.AddAll("skos:narrower", objs)
		handled["CHILD_INSTITUTION"] = true
	}
}

func projectEquivalences(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	pairs := []struct{ normType, prop string }{
		{"RELATED_TERM", "skos:related"},
		{"USE", "skos:exactMatch"},
		{"USED_FOR", "skos:closeMatch"},
	}
	for _, p := range pairs {
		if rels, ok := bucket[p.normType]; ok {
			b.AddAll(p.prop, skosObjects(rels))
			handled[p.normType] = true
		}
	}
}

// skosObjects builds the labeled reference objects used by the SKOS
// projections, refining @type by the target's record type.
func skosObjects(rels []relation.Relationship) []any {
	res := make([]any, 0, len(rels))
	for _, r := range rels {
		obj := map[string]any{"@id": r.TargetID}
		if name := r.BestName(); name != "" {
			obj["skos:prefLabel"] = name
			obj["schema:name"] = name
		}
		if r.TargetType != "" {
			obj["@type"] = skosTypes(r.TargetType)
		}
		res = append(res, obj)
	}
	return res
}

func skosTypes(targetType string) []string {
	switch targetType {
	case "Concept":
		return []string{"skos:Concept"}
	case "Person":
		return []string{"schema:Person"}
	case "Institution":
		return []string{"schema:Organization"}
	case "Geographic Term":
		return []string{"schema:Place"}
	case "Time Period":
		return []string{"dcterms:PeriodOfTime"}
	case "Serial Publication":
		return []string{"bibo:Periodical"}
	default:
		return []string{"skos:Concept"}
	}
}
