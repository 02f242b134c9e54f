// Package vocab holds the static vocabulary tables used to project
// IsisCB records onto standard ontologies (Dublin Core, schema.org,
// SKOS, BIBO, FOAF, VIVO).
//
// All tables are process-wide immutable data, declared in source order
// and safe for unsynchronized concurrent reads. Lookups never fail:
// unknown tokens degrade to synthesized isiscb: properties and classes.
package vocab

import (
	"strings"
)

// Namespace binds a prefix to its base URI in the JSON-LD context.
type Namespace struct {
	Prefix string
	URI    string
}

// Namespaces lists the namespace prefixes of the shared @context,
// in declaration order.
var Namespaces = []Namespace{
	{"dc", "http://purl.org/dc/elements/1.1/"},
	{"dcterms", "http://purl.org/dc/terms/"},
	{"schema", "http://schema.org/"},
	{"bibo", "http://purl.org/ontology/bibo/"},
	{"foaf", "http://xmlns.com/foaf/0.1/"},
	{"skos", "http://www.w3.org/2004/02/skos/core#"},
	{"prism", "http://prismstandard.org/namespaces/basic/2.0/"},
	{"rdfs", "http://www.w3.org/2000/01/rdf-schema#"},
	{"vivo", "http://vivoweb.org/ontology/core#"},
	{"isiscb", "https://ontology.isiscb.org/vocabulary/"},
}

// FieldMapping describes how one bibliographic field maps onto the
// standard vocabularies: a primary property, equivalent aliases folded
// into the same semantic slot, and isiscb extension properties.
type FieldMapping struct {
	Name        string
	Primary     string
	Equivalents []string
	Extensions  []string
}

// FieldMappings lists the standard field mappings in declaration order.
var FieldMappings = []FieldMapping{
	{
		Name:        "title",
		Primary:     "dc:title",
		Equivalents: []string{"schema:name", "isiscb:title"},
		Extensions:  []string{"isiscb:mainTitle", "isiscb:subtitle"},
	},
	{
		Name:        "author",
		Primary:     "dc:creator",
		Equivalents: []string{"schema:author", "isiscb:author"},
		Extensions:  []string{"isiscb:authorRole", "isiscb:authorOrder"},
	},
	{
		Name:        "date",
		Primary:     "dc:date",
		Equivalents: []string{"schema:datePublished", "isiscb:publicationDate"},
		Extensions:  []string{"isiscb:yearNormalized", "isiscb:dateOriginal"},
	},
	{
		Name:        "publisher",
		Primary:     "dc:publisher",
		Equivalents: []string{"schema:publisher"},
		Extensions:  []string{"isiscb:publisherLocation"},
	},
	{
		Name:        "subject",
		Primary:     "dc:subject",
		Equivalents: []string{"schema:about"},
		Extensions:  []string{"isiscb:categoryNumber", "isiscb:subjectClassification"},
	},
	{
		Name:        "language",
		Primary:     "dc:language",
		Equivalents: []string{"schema:inLanguage"},
	},
	{
		Name:        "identifier",
		Primary:     "dc:identifier",
		Equivalents: []string{"schema:identifier"},
		Extensions:  []string{"isiscb:recordID", "isiscb:recid"},
	},
}

var fieldMappingIdx = indexFieldMappings(FieldMappings)

func indexFieldMappings(fms []FieldMapping) map[string]*FieldMapping {
	res := make(map[string]*FieldMapping, len(fms))
	for i := range fms {
		res[fms[i].Name] = &fms[i]
	}
	return res
}

// FieldProperty returns the primary output property for a mapped
// bibliographic field name. Unknown names synthesize isiscb:<name>.
func FieldProperty(name string) string {
	if fm, ok := fieldMappingIdx[name]; ok {
		return fm.Primary
	}
	return "isiscb:" + name
}

// ExtensionProperty returns the isiscb extension property of a field
// whose suffix matches key, compared case-insensitively. A field
// without a matching extension synthesizes isiscb:<key>.
func ExtensionProperty(name, key string) string {
	if fm, ok := fieldMappingIdx[name]; ok {
		for _, ext := range fm.Extensions {
			if strings.HasSuffix(strings.ToLower(ext), strings.ToLower(key)) {
				return ext
			}
		}
	}
	return "isiscb:" + key
}

// authorityTypeClasses maps authority Record Type tokens to their
// ontology classes. Lookup is exact-string.
var authorityTypeClasses = map[string][]string{
	"Person":             {"schema:Person", "foaf:Person"},
	"Institution":        {"schema:Organization", "foaf:Organization"},
	"Geographic Term":    {"schema:Place"},
	"Concept":            {"skos:Concept"},
	"Time Period":        {"dcterms:PeriodOfTime"},
	"Serial Publication": {"bibo:Periodical"},
	"Event":              {"schema:Event"},
	"Creative Work":      {"schema:CreativeWork"},
	"Category Division":  {"skos:Collection"},
	"Cross-reference":    {"skos:Collection"},
}

// citationTypeClasses maps citation Record Type tokens to their
// ontology classes. Lookup is exact-string.
var citationTypeClasses = map[string][]string{
	"Book":                  {"bibo:Book", "schema:Book"},
	"Article":               {"bibo:Article", "schema:ScholarlyArticle"},
	"Thesis":                {"bibo:Thesis", "schema:Thesis"},
	"Chapter":               {"bibo:Chapter", "schema:Chapter"},
	"Review":                {"bibo:AcademicArticle", "schema:Review"},
	"Essay":                 {"bibo:AcademicArticle"},
	"Website":               {"schema:WebSite"},
	"Conference Proceeding": {"bibo:Proceedings"},
	"Conference Paper":      {"bibo:AcademicArticle", "schema:Article"},
}

// AuthorityTypeClasses returns the ontology classes for an authority
// Record Type token. Unknown tokens map to isiscb:UnmappedType. The
// source-specific isiscb class is always appended last, so the result
// is never solely a generic fallback.
func AuthorityTypeClasses(token string) []string {
	return typeClasses(authorityTypeClasses, token)
}

// CitationTypeClasses returns the ontology classes for a citation
// Record Type token, with the same fallback behavior as
// AuthorityTypeClasses.
func CitationTypeClasses(token string) []string {
	return typeClasses(citationTypeClasses, token)
}

func typeClasses(table map[string][]string, token string) []string {
	if token == "" {
		return []string{"isiscb:UnknownType"}
	}
	std, ok := table[token]
	if !ok {
		std = []string{"isiscb:UnmappedType"}
	}
	res := make([]string, 0, len(std)+1)
	res = append(res, std...)
	res = append(res, "isiscb:"+strings.ReplaceAll(token, " ", ""))
	return res
}

// NormalizeType canonicalizes a relationship type token for bucketing
// and rule lookup: uppercase with spaces replaced by underscores.
func NormalizeType(token string) string {
	token = strings.TrimSpace(token)
	return strings.ToUpper(strings.ReplaceAll(token, " ", "_"))
}

// CamelCase converts a normalized token like ARCHIVAL_REPOSITORY to
// archivalRepository, the form used for synthesized isiscb properties
// and relationship wrapper classes.
func CamelCase(token string) string {
	words := strings.Fields(strings.ReplaceAll(token, "_", " "))
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}
