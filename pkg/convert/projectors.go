package convert

import (
	"sort"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

var (
	personTypes       = []string{"schema:Person", "foaf:Person"}
	organizationTypes = []string{"schema:Organization", "foaf:Organization"}
)

// sortByOrder returns the relationships sorted ascending by display
// order. The sort is stable: ties keep their input sequence.
func sortByOrder(rels []relation.Relationship) []relation.Relationship {
	res := make([]relation.Relationship, len(rels))
	copy(res, rels)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].OrderValue() < res[j].OrderValue()
	})
	return res
}

// fallbackName synthesizes a non-empty display name from the role and
// the raw id of the target, e.g. "Author CBA000123".
func fallbackName(role string, r relation.Relationship) string {
	role = strings.ToLower(role)
	if role != "" {
		role = strings.ToUpper(role[:1]) + role[1:]
	}
	return strings.TrimSpace(role + " " + r.IDSuffix())
}

// entityName resolves the display name by priority: display name,
// authority name, synthetic placeholder. Never empty.
func entityName(role string, r relation.Relationship) string {
	if name := r.BestName(); name != "" {
		return name
	}
	return fallbackName(role, r)
}

// personObject builds the JSON-LD object for one person contributor.
// Institutions acting in person roles get organization typing.
func personObject(r relation.Relationship, role string) map[string]any {
	types := personTypes
	if r.TargetType == "Institution" || r.TargetType == "Organization" {
		types = organizationTypes
	}
	obj := map[string]any{
		"@id":             r.TargetID,
		"@type":           append([]string{}, types...),
		"name":            entityName(role, r),
		"isiscb:role":     strings.ToLower(role),
		"isiscb:position": r.DisplayOrder,
	}
	if r.TargetType != "" {
		obj["isiscb:authorityType"] = r.TargetType
	}
	return obj
}

// personObjects builds person objects for a bucket slice, sorted by
// display order.
func personObjects(rels []relation.Relationship, role string) []any {
	sorted := sortByOrder(rels)
	res := make([]any, 0, len(sorted))
	for _, r := range sorted {
		res = append(res, personObject(r, role))
	}
	return res
}

// conceptTypes refines the @type of a subject object by the target's
// record type.
func conceptTypes(targetType string) []string {
	switch targetType {
	case "Geographic Term":
		return []string{"schema:Place"}
	case "Time Period":
		return []string{"dcterms:PeriodOfTime"}
	case "Person":
		return append([]string{}, personTypes...)
	case "Institution":
		return append([]string{}, organizationTypes...)
	case "Category Division":
		return []string{"skos:Concept", "isiscb:Category"}
	default:
		return []string{"skos:Concept"}
	}
}

// conceptObject builds the JSON-LD object for one subject or category
// relationship, including the parsed classification code when present.
func conceptObject(r relation.Relationship) map[string]any {
	obj := map[string]any{
		"@id":   r.TargetID,
		"@type": conceptTypes(r.TargetType),
		"name":  entityName("subject", r),
	}
	if r.TargetType != "" {
		obj["isiscb:type"] = r.TargetType
	}
	if code := strings.TrimSpace(r.ClassificationCode); code != "" {
		main, sub, found := strings.Cut(code, "-")
		obj["isiscb:mainCategory"] = main
		if found {
			obj["isiscb:subCategory"] = sub
		}
	}
	return obj
}

// containerObject builds the periodical or series object a citation is
// part of.
func containerObject(r relation.Relationship) map[string]any {
	types := []string{"bibo:Series", "schema:Series"}
	if r.TargetType == "Serial Publication" {
		types = []string{"bibo:Periodical", "schema:Periodical"}
	}
	return map[string]any{
		"@id":   r.TargetID,
		"@type": types,
		"name":  entityName("periodical", r),
	}
}

// institutionObject builds the organization object for publisher,
// school, and similar institutional roles.
func institutionObject(r relation.Relationship, role string) map[string]any {
	types := append([]string{}, organizationTypes...)
	if r.NormalizedType == "MEETING" {
		types = []string{"schema:Event"}
	}
	return map[string]any{
		"@id":   r.TargetID,
		"@type": types,
		"name":  entityName(role, r),
	}
}

// sortedTypes returns the bucket's normalized types in a deterministic
// order.
func sortedTypes(bucket relation.Bucket) []string {
	res := make([]string, 0, len(bucket))
	for t := range bucket {
		res = append(res, t)
	}
	sort.Strings(res)
	return res
}
