package convert

import (
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// RecordID mints the document @id from the raw record id and keeps
// the original id under the identifier extension property.
func RecordID(kind relation.Kind, baseURI, value string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}
	base := strings.TrimRight(baseURI, "/")
	return jsonld.Fragment{
		"@id": base + "/" + kind.String() + "/" + value,
		vocab.ExtensionProperty("identifier", "recordID"): value,
	}
}

// Redirect links a retired authority record to its replacement.
func Redirect(baseURI, value string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}
	base := strings.TrimRight(baseURI, "/")
	return jsonld.Fragment{
		"isiscb:redirectsTo": map[string]any{
			"@id": base + "/authority/" + value,
		},
	}
}
