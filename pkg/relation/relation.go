// Package relation parses the delimiter-encoded composite fields of
// IsisCB records ("Related Authorities", "Related Citations") into
// typed relationship records and groups them by normalized type.
//
// Parsing never fails: malformed blocks are skipped with a
// warning-level diagnostic carrying the owning record's identifier,
// and processing continues with the remaining entries.
package relation

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// Kind distinguishes the two record families, which use different
// field tokens and URI path segments.
type Kind int

const (
	Authority Kind = iota
	Citation
)

func (k Kind) String() string {
	if k == Citation {
		return "citation"
	}
	return "authority"
}

// TypeKey returns the field token naming the relationship type.
func (k Kind) TypeKey() string {
	if k == Citation {
		return "CCRType"
	}
	return "ACRType"
}

// IDKey returns the field token naming the target record id.
func (k Kind) IDKey() string {
	if k == Citation {
		return "CitationID"
	}
	return "AuthorityID"
}

// Entry is one parsed delimited block: a mapping from field-key to raw
// string value. Missing keys are simply absent.
type Entry map[string]string

// ParseEntries splits a raw composite-field string into entries.
// Entries are separated by " // ", key-value pairs within an entry by
// " || ", and the key from the value by the first space. Values are
// trimmed. Blocks without a space cannot yield a key and are skipped
// with a warning naming the record. Duplicate keys within one entry
// follow last-write-wins. Empty or blank input yields an empty slice.
func ParseEntries(raw, recordID string) []Entry {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var res []Entry
	for _, block := range strings.Split(raw, " // ") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		entry := make(Entry)
		for _, field := range strings.Split(block, " || ") {
			key, value, found := strings.Cut(field, " ")
			if !found {
				slog.Warn("Skipping field block without key",
					"record", recordID, "block", field)
				continue
			}
			entry[key] = strings.TrimSpace(value)
		}
		if len(entry) > 0 {
			res = append(res, entry)
		}
	}
	return res
}

// Relationship is an immutable value derived from one Entry.
type Relationship struct {
	// Type is the original relationship type token.
	Type string
	// NormalizedType is the canonical bucketing key.
	NormalizedType string
	// TargetID is the minted URI of the far-end record.
	TargetID string
	// DisplayOrder controls presentation sequence; defaults to "1.0".
	DisplayOrder string
	// Name is the authority name or citation title of the target.
	Name string
	// TargetType is the authority or citation record type of the target.
	TargetType string
	// DisplayName, when present, is preferred over Name.
	DisplayName string
	// Status is the target record's status.
	Status string
	// RelationStatus is the status of the relationship itself
	// (citation relationships only).
	RelationStatus string
	// RelationID identifies the relationship record itself
	// (citation relationships only).
	RelationID string
	// ClassificationCode carries the subject classification code when
	// the source supplies one.
	ClassificationCode string
}

// OrderValue parses DisplayOrder as a float for sorting. Unparsable
// or missing orders default to 1.0.
func (r Relationship) OrderValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.DisplayOrder), 64)
	if err != nil {
		return 1.0
	}
	return v
}

// BestName returns DisplayName when non-blank, otherwise Name.
// The result may still be empty; callers supply their own fallback.
func (r Relationship) BestName() string {
	if strings.TrimSpace(r.DisplayName) != "" {
		return r.DisplayName
	}
	return r.Name
}

// IDSuffix returns the last path segment of TargetID, i.e. the raw
// record id the URI was minted from.
func (r Relationship) IDSuffix() string {
	i := strings.LastIndex(r.TargetID, "/")
	return r.TargetID[i+1:]
}

// Bucket groups relationships by normalized type, preserving input
// order within each group.
type Bucket map[string][]Relationship

// Classifier turns parsed entries into relationship buckets for one
// record family.
type Classifier struct {
	kind Kind
	base string
}

// NewClassifier returns a Classifier minting target URIs under the
// given base, e.g. https://data.isiscb.org.
func NewClassifier(kind Kind, baseURI string) Classifier {
	return Classifier{kind: kind, base: strings.TrimRight(baseURI, "/")}
}

// Kind returns the record family the classifier was built for.
func (c Classifier) Kind() Kind {
	return c.kind
}

// TargetURI mints the URI of a target record from its raw id.
func (c Classifier) TargetURI(rawID string) string {
	return c.base + "/" + c.kind.String() + "/" + strings.TrimSpace(rawID)
}

// Relationships derives the ordered relationship list from parsed
// entries. Entries lacking the type token or the id token are dropped
// with a warning.
func (c Classifier) Relationships(entries []Entry, recordID string) []Relationship {
	var res []Relationship
	for _, e := range entries {
		token, hasType := e[c.kind.TypeKey()]
		rawID, hasID := e[c.kind.IDKey()]
		if !hasType || !hasID || strings.TrimSpace(token) == "" ||
			strings.TrimSpace(rawID) == "" {
			slog.Warn("Dropping relationship entry without type or target id",
				"record", recordID, "entry", e)
			continue
		}

		r := Relationship{
			Type:           token,
			NormalizedType: vocab.NormalizeType(token),
			TargetID:       c.TargetURI(rawID),
			DisplayOrder:   "1.0",
		}
		if c.kind == Citation {
			if v, ok := e["CCRDisplayOrder"]; ok && strings.TrimSpace(v) != "" {
				r.DisplayOrder = v
			}
			r.Name = e["CitationTitle"]
			r.TargetType = e["CitationType"]
			r.Status = e["CitationStatus"]
			r.RelationStatus = e["CCRStatus"]
			r.RelationID = e["CCR_ID"]
		} else {
			if v, ok := e["ACRDisplayOrder"]; ok && strings.TrimSpace(v) != "" {
				r.DisplayOrder = v
			}
			r.Name = e["AuthorityName"]
			r.TargetType = e["AuthorityType"]
			r.DisplayName = e["ACRNameForDisplayInCitation"]
			r.Status = e["AuthorityStatus"]
			r.ClassificationCode = e["ClassificationCode"]
		}

		r.Name = strings.TrimSpace(r.Name)
		r.TargetType = strings.TrimSpace(r.TargetType)
		r.DisplayName = strings.TrimSpace(r.DisplayName)
		r.Status = strings.TrimSpace(r.Status)

		res = append(res, r)
	}
	return res
}

// Group buckets relationships by normalized type, preserving input
// order within each group. This step is pure and applies no vocabulary
// decisions.
func Group(rels []Relationship) Bucket {
	res := make(Bucket)
	for _, r := range rels {
		res[r.NormalizedType] = append(res[r.NormalizedType], r)
	}
	return res
}

// Classify combines Relationships and Group.
func (c Classifier) Classify(entries []Entry, recordID string) Bucket {
	return Group(c.Relationships(entries, recordID))
}
