package convert

import (
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// RelatedAuthorities converts the "Related Authorities" field of
// citation records: the typed links from a citation to the authority
// records for its authors, subjects, journal, publisher, and so on.
type RelatedAuthorities struct {
	cls relation.Classifier
}

// NewRelatedAuthorities returns a converter minting authority URIs
// under baseURI.
func NewRelatedAuthorities(baseURI string) RelatedAuthorities {
	return RelatedAuthorities{
		cls: relation.NewClassifier(relation.Authority, baseURI),
	}
}

// Field returns the source column name.
func (c RelatedAuthorities) Field() string { return "Related Authorities" }

// Convert parses the composite field, groups relationships by type,
// and projects each group onto its vocabulary properties. Blank input
// yields an empty fragment; malformed entries are skipped.
func (c RelatedAuthorities) Convert(raw, recordID string) jsonld.Fragment {
	entries := relation.ParseEntries(raw, recordID)
	rels := c.cls.Relationships(entries, recordID)
	if len(rels) == 0 {
		return jsonld.Fragment{}
	}

	b := jsonld.NewBuilder()
	b.Set("isiscb:relatedAuthorities", authorityWrappers(rels))

	bucket := relation.Group(rels)
	handled := make(map[string]bool)

	projectPersons(b, bucket, handled)
	projectSubjects(b, bucket, handled)
	projectContainers(b, bucket, handled)
	projectInstitutions(b, bucket, handled)
	projectGeneric(b, bucket, handled)

	return b.Fragment()
}

// authorityWrappers preserves the full relationship list in input
// order, one wrapper object per source entry.
func authorityWrappers(rels []relation.Relationship) []any {
	res := make([]any, 0, len(rels))
	for _, r := range rels {
		w := map[string]any{
			"@type":                   vocab.ClassURIFor(r.Type),
			"isiscb:relationshipType": r.Type,
			"isiscb:displayOrder":     r.DisplayOrder,
			"isiscb:authority":        map[string]any{"@id": r.TargetID},
		}
		if r.Name != "" {
			w["isiscb:authorityName"] = r.Name
		}
		if r.TargetType != "" {
			w["isiscb:authorityType"] = r.TargetType
		}
		if r.DisplayName != "" {
			w["isiscb:displayName"] = r.DisplayName
		}
		if r.Status != "" {
			w["isiscb:authorityStatus"] = r.Status
		}
		res = append(res, w)
	}
	return res
}

func projectPersons(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	if authors, ok := bucket["AUTHOR"]; ok {
		objs := personObjects(authors, "author")
		b.AddAll("dc:creator", objs)
		b.AddAll("schema:author", objs)
		handled["AUTHOR"] = true
	}
	if editors, ok := bucket["EDITOR"]; ok {
		objs := personObjects(editors, "editor")
		b.AddAll("schema:editor", objs)
		b.AddAll("dc:contributor", objs)
		handled["EDITOR"] = true
	}
}

func projectSubjects(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	if subjects, ok := bucket["SUBJECT"]; ok {
		for _, r := range subjects {
			obj := conceptObject(r)
			b.Add("dc:subject", obj)
			b.Add("schema:about", obj)
		}
		handled["SUBJECT"] = true
	}
	if categories, ok := bucket["CATEGORY"]; ok {
		for _, r := range categories {
			obj := conceptObject(r)
			b.Add("isiscb:category", obj)
			b.Add("dc:subject", obj)
			b.Add("schema:about", obj)
		}
		handled["CATEGORY"] = true
	}
}

// projectContainers accumulates PERIODICAL and BOOK_SERIES entries
// into schema:isPartOf and dcterms:isPartOf. When both types are
// present the slot becomes an array with one entity per relationship.
func projectContainers(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	for _, t := range []string{"PERIODICAL", "BOOK_SERIES"} {
		rels, ok := bucket[t]
		if !ok {
			continue
		}
		for _, r := range rels {
			obj := containerObject(r)
			b.Add("schema:isPartOf", obj)
			b.Add("dcterms:isPartOf", obj)
		}
		handled[t] = true
	}
}

// institutionRoles maps institutional relationship types to their
// dedicated properties and the supplementary class tag appended to
// the projected object, in processing order.
var institutionRoles = []struct {
	normType string
	role     string
	props    []string
	typeTag  string
}{
	{"PUBLISHER", "publisher", []string{"dc:publisher", "schema:publisher"}, ""},
	{"SCHOOL", "school", []string{"bibo:degreeGrantor"}, "schema:CollegeOrUniversity"},
	{"INSTITUTION", "institution", []string{"isiscb:institution", "schema:affiliation"}, ""},
	{"MEETING", "meeting", []string{"bibo:presentedAt"}, "schema:Event"},
	{"ARCHIVAL_REPOSITORY", "archival repository", []string{"isiscb:archivalRepository"}, "vivo:ArchivalOrganization"},
	{"MAINTAINING_INSTITUTION", "maintaining institution", []string{"isiscb:maintainingInstitution"}, ""},
	{"DISTRIBUTOR", "distributor", []string{"schema:distributor"}, ""},
}

func projectInstitutions(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	for _, ir := range institutionRoles {
		rels, ok := bucket[ir.normType]
		if !ok {
			continue
		}
		for _, r := range rels {
			obj := institutionObject(r, ir.role)
			for _, prop := range ir.props {
				b.Add(prop, obj)
			}
			if vocab.IsContributorLike(ir.normType) {
				b.Add("dc:contributor", obj)
			}
		}
		if ir.typeTag != "" {
			b.AppendTypeTag(ir.props[0], ir.typeTag)
		}
		handled[ir.normType] = true
	}
}

// projectGeneric handles every remaining relationship type with the
// generic contributor shape routed to the registered or synthesized
// property. Contributor-like roles additionally accumulate into
// dc:contributor. Unknown types never fail.
func projectGeneric(b *jsonld.Builder, bucket relation.Bucket, handled map[string]bool) {
	for _, t := range sortedTypes(bucket) {
		if handled[t] {
			continue
		}
		rels := bucket[t]
		role := strings.ToLower(strings.ReplaceAll(t, "_", " "))
		objs := personObjects(rels, role)
		b.AddAll(vocab.PropertyFor(t), objs)
		if vocab.IsContributorLike(t) {
			b.AddAll("dc:contributor", objs)
		}
	}
}
