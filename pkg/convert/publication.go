package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

var (
	yearRe  = regexp.MustCompile(`(\d{4})`)
	pagesRe = regexp.MustCompile(`(\d+)\s*p`)
)

// PublicationDetails converts the publication fields of a citation
// row: year, edition, physical details, extent, language and ISBN.
func PublicationDetails(row Row, recordID string) jsonld.Fragment {
	b := jsonld.NewBuilder()

	if year, ok := row.Get("Year of publication"); ok {
		b.Set("dc:date", year)
		b.Set("schema:datePublished", year)
		if m := yearRe.FindStringSubmatch(year); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				b.Set("isiscb:yearNormalized", n)
			}
		}
	}

	if edition, ok := row.Get("Edition Details"); ok {
		b.Set("bibo:edition", edition)
		b.Set("isiscb:editionDetails", edition)
	}

	if details, ok := row.Get("Physical Details"); ok {
		b.Set("isiscb:physicalDetails", details)
	}

	if extent, ok := row.Get("Extent"); ok {
		b.Set("isiscb:extent", extent)
		if strings.Contains(strings.ToLower(extent), "p.") {
			if m := pagesRe.FindStringSubmatch(extent); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					b.Set("schema:numberOfPages", n)
				}
			}
		}
	}

	if isbn, ok := row.Get("ISBN"); ok {
		isbn = strings.NewReplacer("-", "", " ", "").Replace(isbn)
		if isbn != "" {
			b.Set("bibo:isbn", isbn)
			b.Set("schema:identifier", map[string]any{
				"@type":      "PropertyValue",
				"propertyID": "ISBN",
				"value":      isbn,
			})
		}
	}

	return b.Fragment()
}
