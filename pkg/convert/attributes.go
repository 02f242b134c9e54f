package convert

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// attributeKeys maps raw attribute entry keys to their friendly names.
var attributeKeys = map[string]string{
	"AttributeID":            "id",
	"AttributeStatus":        "status",
	"AttributeType":          "type",
	"AttributeValue":         "value",
	"AttributeFreeFormValue": "displayValue",
	"AttributeStart":         "start",
	"AttributeEnd":           "end",
	"AttributeDescription":   "description",
}

var bracketYearRe = regexp.MustCompile(`\[(\d+)\]`)

// Attributes converts the structured Attributes field. Every entry is
// kept under isiscb:attributes; known attribute types additionally
// project onto standard properties (birth/death dates, journal
// abbreviation, geographic typing, country code).
func Attributes(value, recordID string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}

	var entries []map[string]any
	for _, raw := range strings.Split(value, " // ") {
		entry := parseAttribute(strings.TrimSpace(raw))
		if len(entry) > 0 {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return jsonld.Fragment{}
	}

	b := jsonld.NewBuilder()
	all := make([]any, 0, len(entries))
	for _, e := range entries {
		all = append(all, e)
	}
	b.Set("isiscb:attributes", all)

	for _, entry := range entries {
		typ, _ := entry["type"].(string)
		switch typ {
		case "BirthToDeathDates":
			processBirthDeathDates(b, entry)
		case "Birth date":
			processSingleDate(b, entry, "schema:birthDate")
		case "Death date":
			processSingleDate(b, entry, "schema:deathDate")
		case "FlourishedDate":
			processFlourishedDate(b, entry)
		case "JournalAbbr":
			if v, ok := entry["value"].(string); ok && v != "" {
				b.Set("bibo:shortTitle", v)
				b.Set("isiscb:journalAbbreviation", v)
			}
		case "GeographicEntityType":
			processGeographicEntityType(b, entry)
		case "CountryCode":
			if v, ok := entry["value"].(string); ok && v != "" {
				b.Set("schema:addressCountry", v)
			}
		}
	}

	return b.Fragment()
}

// parseAttribute splits a single " || "-delimited entry into a keyed
// map. Values that look like a bracketed list ("[[1852, 1934]]") also
// get a decoded structuredValue.
func parseAttribute(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	entry := make(map[string]any)
	for _, field := range strings.Split(raw, " || ") {
		key, val, found := strings.Cut(field, " ")
		if !found {
			continue
		}
		if friendly, ok := attributeKeys[key]; ok {
			key = friendly
		}
		entry[key] = strings.TrimSpace(val)
	}

	if v, ok := entry["value"].(string); ok &&
		strings.HasPrefix(v, "[[") && strings.HasSuffix(v, "]]") {
		trimmed := strings.ReplaceAll(strings.ReplaceAll(v, "[[", "["), "]]", "]")
		var values []any
		if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
			entry["structuredValue"] = values
		} else {
			slog.Debug("Unparsable structured attribute value", "value", v)
		}
	}
	return entry
}

func processBirthDeathDates(b *jsonld.Builder, entry map[string]any) {
	values, _ := entry["structuredValue"].([]any)
	var birth, death string
	if len(values) > 0 {
		birth = yearString(values[0])
	}
	if len(values) > 1 {
		death = yearString(values[1])
	}
	if birth != "" {
		b.Set("schema:birthDate", birth)
	}
	if death != "" {
		b.Set("schema:deathDate", death)
	}
	if birth != "" && death != "" {
		display, _ := entry["displayValue"].(string)
		if display == "" {
			display = birth + "-" + death
		}
		b.Set("schema:birthDeathDate", display)
	}
}

func processSingleDate(b *jsonld.Builder, entry map[string]any, prop string) {
	if values, ok := entry["structuredValue"].([]any); ok && len(values) > 0 {
		b.Set(prop, yearString(values[0]))
		return
	}
	if v, ok := entry["value"].(string); ok {
		if m := bracketYearRe.FindStringSubmatch(v); m != nil {
			b.Set(prop, m[1])
		}
	}
}

func processFlourishedDate(b *jsonld.Builder, entry map[string]any) {
	values, ok := entry["structuredValue"].([]any)
	if !ok || len(values) == 0 {
		return
	}
	b.Set("isiscb:flourishedDate", yearString(values[0]))
	if display, ok := entry["displayValue"].(string); ok && display != "" {
		b.Set("isiscb:flourishedDisplayValue", display)
	}
}

func processGeographicEntityType(b *jsonld.Builder, entry map[string]any) {
	geoType, ok := entry["value"].(string)
	if !ok || geoType == "" {
		return
	}
	b.Set("isiscb:geographicEntityType", geoType)

	placeTypes := map[string]string{
		"City":     "schema:City",
		"Country":  "schema:Country",
		"State":    "schema:State",
		"Province": "schema:AdministrativeArea",
	}
	if cls, ok := placeTypes[geoType]; ok {
		b.Add("@type", cls)
	}
}

// yearString renders a decoded JSON value as a plain year string.
// json.Unmarshal yields float64 for numbers.
func yearString(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%d", int64(n))
	case string:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}
