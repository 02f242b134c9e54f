package convert

import (
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// RelatedCitations converts the "Related Citations" field: typed links
// between citation records (reviews, part-of, references, succession).
type RelatedCitations struct {
	cls relation.Classifier
}

// NewRelatedCitations returns a converter minting citation URIs under
// baseURI.
func NewRelatedCitations(baseURI string) RelatedCitations {
	return RelatedCitations{
		cls: relation.NewClassifier(relation.Citation, baseURI),
	}
}

// Field returns the source column name.
func (c RelatedCitations) Field() string { return "Related Citations" }

// Convert parses the composite field and routes each relationship
// group to its registered property, or a synthesized isiscb property
// for unknown types. Blank input yields an empty fragment.
func (c RelatedCitations) Convert(raw, recordID string) jsonld.Fragment {
	entries := relation.ParseEntries(raw, recordID)
	rels := c.cls.Relationships(entries, recordID)
	if len(rels) == 0 {
		return jsonld.Fragment{}
	}

	b := jsonld.NewBuilder()
	b.Set("isiscb:relatedCitations", citationWrappers(rels))

	bucket := relation.Group(rels)
	for _, t := range sortedTypes(bucket) {
		b.AddAll(vocab.PropertyFor(t), citationObjects(bucket[t]))
	}

	return b.Fragment()
}

// citationWrappers preserves the full relationship list in input
// order.
func citationWrappers(rels []relation.Relationship) []any {
	res := make([]any, 0, len(rels))
	for _, r := range rels {
		w := map[string]any{
			"@type":                   vocab.ClassURIFor(r.Type),
			"isiscb:relationshipType": r.Type,
			"isiscb:citation":         map[string]any{"@id": r.TargetID},
		}
		if r.RelationID != "" {
			w["isiscb:relationshipID"] = r.RelationID
		}
		if r.RelationStatus != "" {
			w["isiscb:relationshipStatus"] = r.RelationStatus
		}
		if r.Name != "" {
			w["isiscb:citationTitle"] = r.Name
		}
		if r.TargetType != "" {
			w["isiscb:citationType"] = r.TargetType
		}
		if r.Status != "" {
			w["isiscb:citationStatus"] = r.Status
		}
		res = append(res, w)
	}
	return res
}

func citationObjects(rels []relation.Relationship) []any {
	res := make([]any, 0, len(rels))
	for _, r := range rels {
		obj := map[string]any{"@id": r.TargetID}
		if r.Name != "" {
			obj["dc:title"] = r.Name
		}
		if r.TargetType != "" {
			obj["isiscb:citationType"] = r.TargetType
		}
		res = append(res, obj)
	}
	return res
}
