package convert

import (
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// Name converts the name fields of an authority row. The shape of the
// output depends on the Record Type: persons get split name
// components, geographic terms a place name, time periods a temporal
// coverage. Every shape carries schema:name and skos:prefLabel.
func Name(row Row, recordID string) jsonld.Fragment {
	name, _ := row.Get("Name")
	preferred, _ := row.Get("Name Preferred")

	display := preferred
	if display == "" {
		display = name
	}

	b := jsonld.NewBuilder()
	b.Set("schema:name", display)
	b.Set("skos:prefLabel", display)

	recordType, _ := row.Get("Record Type")
	switch recordType {
	case "Person":
		if lastName, ok := row.Get("Last Name"); ok {
			b.Set("schema:familyName", lastName)
		}
		if firstName, ok := row.Get("First Name"); ok {
			b.Set("schema:givenName", firstName)
		}
		if suffix, ok := row.Get("Name Suffix"); ok {
			b.Set("schema:nameSuffix", suffix)
		}
	case "Geographic Term":
		b.Set("schema:placeName", display)
	case "Time Period":
		b.Set("dcterms:temporal", display)
	}

	// The non-preferred form survives as an alternate label.
	if preferred != "" && preferred != name {
		b.Set("isiscb:namePreferred", preferred)
		b.Set("skos:altLabel", []any{name})
	}

	return b.Fragment()
}
