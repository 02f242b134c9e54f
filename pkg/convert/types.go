package convert

import (
	"log/slog"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// RecordType maps the Record Type token to the document's @type array.
// Unknown tokens keep a source-specific isiscb class next to the
// generic fallback; an empty token yields isiscb:UnknownType.
func RecordType(kind relation.Kind, value, recordID string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		slog.Warn("Empty record type", "record", recordID)
	}
	var classes []string
	if kind == relation.Citation {
		classes = vocab.CitationTypeClasses(value)
	} else {
		classes = vocab.AuthorityTypeClasses(value)
	}
	return jsonld.Fragment{"@type": classes}
}

// recordStatuses maps the primary status token of Record Nature to its
// isiscb status class.
var recordStatuses = map[string]string{
	"Active":   "isiscb:statusActive",
	"Inactive": "isiscb:statusInactive",
	"Delete":   "isiscb:statusMarkedForDeletion",
	"Redirect": "isiscb:statusRedirect",
}

// RecordNature extracts the record status from the Record Nature
// field, which arrives as "Status (explanation)".
func RecordNature(value string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}
	status, _, _ := strings.Cut(value, "(")
	status = strings.TrimSpace(status)

	mapped, ok := recordStatuses[status]
	if !ok {
		mapped = "isiscb:status" + strings.ReplaceAll(status, " ", "")
	}
	return jsonld.Fragment{
		"isiscb:recordStatus":         mapped,
		"isiscb:recordNatureOriginal": value,
	}
}
