package convert

import (
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// classificationSchemes are the well-known IsisCB classification
// systems, matched by substring of the system name.
var classificationSchemes = []string{
	"Guerlac", "Whitrow", "Weldon", "SHOT", "Proper name",
}

// Classification converts the Classification System and Classification
// Code fields of an authority row. Concepts and category divisions get
// SKOS scheme and notation structure, including hierarchical code
// splitting ("110-340" into main and sub category).
func Classification(row Row, recordID string) jsonld.Fragment {
	system, _ := row.Get("Classification System")
	code, _ := row.Get("Classification Code")
	if system == "" && code == "" {
		return jsonld.Fragment{}
	}
	recordType, _ := row.Get("Record Type")
	conceptLike := recordType == "Concept" || recordType == "Category Division"

	b := jsonld.NewBuilder()

	if system != "" {
		b.Set("isiscb:classificationSystem", system)
		if conceptLike {
			b.Set("skos:inScheme", map[string]any{"skos:prefLabel": system})
		}
		for _, scheme := range classificationSchemes {
			if strings.Contains(system, scheme) {
				b.Set("isiscb:classificationScheme", scheme)
				break
			}
		}
	}

	if code != "" {
		b.Set("isiscb:classificationCode", code)
		if conceptLike {
			b.Set("skos:notation", code)
			if main, sub, found := strings.Cut(code, "-"); found && !strings.Contains(sub, "-") {
				b.Set("isiscb:mainCategory", main)
				b.Set("isiscb:subCategory", sub)
			} else if !found {
				b.Set("isiscb:mainCategory", code)
			}
		}
	}

	return b.Fragment()
}
