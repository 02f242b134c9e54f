package convert

import (
	"regexp"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
)

// rangeRe splits "value (From start // To end)" into its parts; plain
// values match with empty range groups.
var rangeRe = regexp.MustCompile(`^(.*?)(?:\s*\(From\s+(.*?)\s*//\s*To\s+(.*?)\s*\))?$`)

// JournalMetadata converts the journal fields of a citation row:
// the journal authority link, volume, issue and free-text pages.
func JournalMetadata(row Row, baseURI, recordID string) jsonld.Fragment {
	b := jsonld.NewBuilder()

	if journalID, ok := row.Get("Journal Link"); ok {
		base := strings.TrimRight(baseURI, "/")
		b.Set("schema:isPartOf", map[string]any{
			"@id":   base + "/authority/" + journalID,
			"@type": []string{"bibo:Periodical"},
		})
	}

	if volume, ok := row.Get("Journal Volume"); ok {
		display, start, end := extractRange(volume)
		b.Set("bibo:volume", display)
		b.Set("isiscb:journalVolume", volume)
		if start != "" && end != "" {
			b.Set("isiscb:journalVolumeStart", start)
			b.Set("isiscb:journalVolumeEnd", end)
		}
	}

	if issue, ok := row.Get("Journal Issue"); ok {
		display, start, end := extractRange(issue)
		b.Set("bibo:issue", display)
		b.Set("isiscb:journalIssue", issue)
		if start != "" && end != "" {
			b.Set("isiscb:journalIssueStart", start)
			b.Set("isiscb:journalIssueEnd", end)
		}
	}

	if pages, ok := row.Get("Pages Free Text"); ok {
		display, start, end := extractRange(pages)
		b.Set("bibo:pages", display)
		b.Set("isiscb:pagesFreeText", pages)
		switch {
		case start != "" && end != "":
			b.Set("bibo:pageStart", start)
			b.Set("bibo:pageEnd", end)
		case strings.Contains(display, "-"):
			first, rest, _ := strings.Cut(display, "-")
			b.Set("bibo:pageStart", strings.TrimSpace(first))
			b.Set("bibo:pageEnd", strings.TrimSpace(rest))
		}
	}

	return b.Fragment()
}

func extractRange(value string) (display, start, end string) {
	m := rangeRe.FindStringSubmatch(value)
	if m == nil {
		return value, "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
}
