package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

// statusFields maps curation status columns to their properties.
var statusFields = []struct{ field, prop string }{
	{"Fully Entered", "isiscb:fullyEntered"},
	{"Proofed", "isiscb:proofed"},
	{"SPW checked", "isiscb:spwChecked"},
	{"Published Print", "isiscb:publishedPrint"},
	{"Published RLG", "isiscb:publishedRLG"},
	{"Stub Record Status", "isiscb:stubRecordStatus"},
}

var (
	bracesRe = regexp.MustCompile(`\{([^{}]*?)\}`)
	yearsRe  = regexp.MustCompile(`(\d{4})-(\d{4})?`)
)

// Metadata converts the administrative fields shared by citation and
// authority rows: curation status flags, created/modified stamps,
// creator and modifier, record history, staff notes, dataset and
// record links. Authority rows additionally mine birth/death dates
// out of staff-note metadata and keep the related citations count.
func Metadata(kind relation.Kind, row Row, recordID string) jsonld.Fragment {
	b := jsonld.NewBuilder()

	for _, sf := range statusFields {
		if v, ok := row.Get(sf.field); ok {
			b.Set(sf.prop, v)
		}
	}

	if v, ok := row.Get("Created Date"); ok {
		b.Set("dc:created", v)
	}
	if v, ok := row.Get("Modified Date"); ok {
		b.Set("dc:modified", v)
	}

	if v, ok := row.Get("Creator"); ok {
		b.Set("dc:creator", accountObject(v))
	}
	if v, ok := row.Get("Modifier"); ok {
		b.Set("isiscb:modifier", accountObject(v))
	}

	if v, ok := row.Get("Record History"); ok {
		b.Set("isiscb:recordHistory", v)
	}

	if notes, ok := row.Get("Staff Notes"); ok {
		b.Set("isiscb:staffNotes", notes)
		if parsed := staffNotesMetadata(notes); len(parsed) > 0 {
			b.Set("isiscb:staffNotesMetadata", parsed)
			if kind == relation.Authority {
				notesDates(b, parsed)
			}
		}
	}

	if v, ok := row.Get("Complete Citation"); ok {
		b.Set("isiscb:completeCitation", v)
	}
	if v, ok := row.Get("Dataset"); ok {
		b.Set("isiscb:dataset", v)
	}

	if link, ok := row.Get("Link to Record"); ok {
		b.Set("isiscb:linkToRecord", link)
		if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
			b.Add("schema:sameAs", link)
		}
	}

	if kind == relation.Authority {
		if v, ok := row.Get("Related Citations Count"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				b.Set("isiscb:relatedCitationsCount", n)
			} else {
				b.Set("isiscb:relatedCitationsCount", v)
			}
		}
	}

	return b.Fragment()
}

// accountObject parses the "Name (username)" convention used by the
// Creator and Modifier columns. Values without the parenthesized
// username stay plain strings.
func accountObject(value string) any {
	if !strings.Contains(value, "(") || !strings.Contains(value, ")") {
		return value
	}
	name, rest, _ := strings.Cut(value, "(")
	username, _, _ := strings.Cut(rest, ")")
	return map[string]any{
		"schema:name":     strings.TrimSpace(name),
		"isiscb:username": strings.TrimSpace(username),
	}
}

// staffNotesMetadata extracts the {key: value} annotations curators
// leave inside staff notes.
func staffNotesMetadata(notes string) []any {
	var parsed []any
	for _, m := range bracesRe.FindAllStringSubmatch(notes, -1) {
		inner := m[1]
		if key, value, found := strings.Cut(inner, ":"); found {
			parsed = append(parsed, map[string]any{
				"key":   strings.TrimSpace(key),
				"value": strings.TrimSpace(value),
			})
		} else {
			parsed = append(parsed, map[string]any{
				"value": strings.TrimSpace(inner),
			})
		}
	}
	return parsed
}

// notesDates lifts "Birth and Death dates" annotations into standard
// schema.org date properties.
func notesDates(b *jsonld.Builder, parsed []any) {
	for _, item := range parsed {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key, _ := entry["key"].(string)
		if !strings.Contains(key, "Birth and Death dates") {
			continue
		}
		value, _ := entry["value"].(string)
		b.Set("isiscb:birthDeathDatesFromNotes", value)

		if m := yearsRe.FindStringSubmatch(value); m != nil {
			b.Set("schema:birthDate", m[1])
			if m[2] != "" {
				b.Set("schema:deathDate", m[2])
			}
		}
	}
}
