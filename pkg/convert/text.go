package convert

import (
	"log/slog"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// Title converts a citation title to its primary property. An empty
// title is kept as an empty string so the document always carries the
// property.
func Title(value, recordID string) jsonld.Fragment {
	title := strings.TrimSpace(value)
	if title == "" {
		slog.Warn("Empty title", "record", recordID)
	}
	return jsonld.Fragment{vocab.FieldProperty("title"): title}
}

// Abstract converts a citation abstract.
func Abstract(value, _ string) jsonld.Fragment {
	abstract := strings.TrimSpace(value)
	if abstract == "" {
		return jsonld.Fragment{}
	}
	return jsonld.Fragment{
		"dc:abstract":     abstract,
		"schema:abstract": abstract,
	}
}

// Description converts an authority description. Descriptions that
// open with "AKA" or "Also known as" contribute the alternate name as
// a skos:altLabel.
func Description(value, _ string) jsonld.Fragment {
	description := strings.TrimSpace(value)
	if description == "" {
		return jsonld.Fragment{}
	}
	res := jsonld.Fragment{
		"schema:description": description,
		"dc:description":     description,
	}

	lower := strings.ToLower(description)
	if strings.HasPrefix(lower, "aka ") ||
		strings.HasPrefix(lower, "also known as ") {
		akaPart, _, _ := strings.Cut(description, ",")
		var aka string
		switch {
		case strings.Contains(akaPart, "AKA "):
			aka = strings.TrimSpace(strings.Replace(akaPart, "AKA ", "", 1))
		case strings.Contains(akaPart, "Also known as "):
			aka = strings.TrimSpace(strings.Replace(akaPart, "Also known as ", "", 1))
		}
		if aka != "" {
			res["skos:altLabel"] = []any{aka}
		}
	}
	return res
}
