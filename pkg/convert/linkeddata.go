package convert

import (
	"log/slog"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// linkedEntry is one parsed "Type X || URN Y" pair.
type linkedEntry struct {
	typ string
	urn string
}

// LinkedData converts the Linked Data field: external authority links
// (DOI, ISBN, URI, VIAF and friends). Entries keep their grouped raw
// form under isiscb:linkedData; well-known types additionally land on
// schema:identifier or schema:sameAs.
func LinkedData(value, recordID string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}

	var entries []linkedEntry
	for _, raw := range strings.Split(value, " // ") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		entry, ok := parseLinkedEntry(raw)
		if !ok {
			slog.Warn("Skipping malformed linked data entry",
				"record", recordID, "entry", raw)
			continue
		}
		if entry.urn == "" {
			slog.Warn("Skipping linked data entry without URN",
				"record", recordID, "entry", raw)
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return jsonld.Fragment{}
	}

	// Group URNs by type, preserving first-seen type order.
	var order []string
	grouped := make(map[string][]string)
	for _, e := range entries {
		if _, ok := grouped[e.typ]; !ok {
			order = append(order, e.typ)
		}
		grouped[e.typ] = append(grouped[e.typ], e.urn)
	}

	b := jsonld.NewBuilder()
	all := make([]any, 0, len(order))
	for _, t := range order {
		all = append(all, map[string]any{"type": t, "values": grouped[t]})
	}
	b.Set("isiscb:linkedData", all)

	for _, t := range []string{"DOI", "ISBN"} {
		for _, urn := range grouped[t] {
			b.Add("schema:identifier", map[string]any{
				"@type":      "PropertyValue",
				"propertyID": t,
				"value":      urn,
			})
		}
	}
	for _, urn := range grouped["URI"] {
		b.Add("schema:sameAs", urn)
	}

	return b.Fragment()
}

// parseLinkedEntry accepts "Type X || URN Y"; both parts must carry
// their keyword prefix.
func parseLinkedEntry(raw string) (linkedEntry, bool) {
	typePart, urnPart, found := strings.Cut(raw, "||")
	if !found {
		return linkedEntry{}, false
	}
	typePart = strings.TrimSpace(typePart)
	urnPart = strings.TrimSpace(urnPart)
	if !strings.HasPrefix(typePart, "Type ") || !strings.HasPrefix(urnPart, "URN ") {
		return linkedEntry{}, false
	}
	return linkedEntry{
		typ: strings.TrimSpace(strings.TrimPrefix(typePart, "Type ")),
		urn: strings.TrimSpace(strings.TrimPrefix(urnPart, "URN ")),
	}, true
}
