package convert

import (
	"sort"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// languageCodes maps lower-cased language names to ISO 639-1 codes.
var languageCodes = map[string]string{
	"english":       "en",
	"french":        "fr",
	"german":        "de",
	"spanish":       "es",
	"italian":       "it",
	"latin":         "la",
	"greek":         "el",
	"arabic":        "ar",
	"russian":       "ru",
	"chinese":       "zh",
	"japanese":      "ja",
	"portuguese":    "pt",
	"dutch":         "nl",
	"swedish":       "sv",
	"danish":        "da",
	"norwegian":     "no",
	"polish":        "pl",
	"czech":         "cs",
	"hungarian":     "hu",
	"finnish":       "fi",
	"turkish":       "tr",
	"hebrew":        "he",
	"korean":        "ko",
	"thai":          "th",
	"hindi":         "hi",
	"bengali":       "bn",
	"urdu":          "ur",
	"persian":       "fa",
	"indonesian":    "id",
	"malay":         "ms",
	"vietnamese":    "vi",
	"tagalog":       "tl",
	"tamil":         "ta",
	"telugu":        "te",
	"marathi":       "mr",
	"punjabi":       "pa",
	"gujarati":      "gu",
	"malayalam":     "ml",
	"kannada":       "kn",
	"catalan":       "ca",
	"basque":        "eu",
	"galician":      "gl",
	"irish":         "ga",
	"welsh":         "cy",
	"albanian":      "sq",
	"armenian":      "hy",
	"georgian":      "ka",
	"ukrainian":     "uk",
	"belarusian":    "be",
	"bulgarian":     "bg",
	"croatian":      "hr",
	"serbian":       "sr",
	"slovenian":     "sl",
	"slovak":        "sk",
	"romanian":      "ro",
	"lithuanian":    "lt",
	"latvian":       "lv",
	"estonian":      "et",
	"icelandic":     "is",
	"faroese":       "fo",
	"maltese":       "mt",
	"luxembourgish": "lb",
}

// Language converts the Language field to tagged literals under
// dc:language. A single language yields an object, several yield an
// array. Names without a known ISO code keep only @value.
func Language(value, _ string) jsonld.Fragment {
	value = strings.TrimSpace(value)
	if value == "" {
		return jsonld.Fragment{}
	}

	// Normalize all separators to commas before splitting.
	for _, sep := range []string{",", ";", " and ", " or "} {
		value = strings.ReplaceAll(value, sep, ",")
	}

	var langs []any
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		langs = append(langs, languageObject(name))
	}
	if len(langs) == 0 {
		return jsonld.Fragment{}
	}
	if len(langs) == 1 {
		return jsonld.Fragment{"dc:language": langs[0]}
	}
	return jsonld.Fragment{"dc:language": langs}
}

func languageObject(name string) map[string]any {
	obj := map[string]any{"@value": name}
	if code := languageCode(name); code != "" {
		obj["@language"] = code
	}
	return obj
}

var languageNames = func() []string {
	names := make([]string, 0, len(languageCodes))
	for name := range languageCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// languageCode resolves an ISO code by exact match first, then by
// substring match in either direction ("swiss german" picks up "de").
func languageCode(name string) string {
	lower := strings.ToLower(name)
	if code, ok := languageCodes[lower]; ok {
		return code
	}
	for _, known := range languageNames {
		if strings.Contains(lower, known) || strings.Contains(known, lower) {
			return languageCodes[known]
		}
	}
	return ""
}
