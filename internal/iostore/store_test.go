package iostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

func TestBuildDocuments(t *testing.T) {
	now := time.Now()
	docs := []jsonld.Fragment{
		{
			"@id":                 "https://data.isiscb.org/citation/CBB000001",
			"@type":               []any{"bibo:Book", "schema:Book", "isiscb:Book"},
			"isiscb:recordID":     "CBB000001",
			"isiscb:recordStatus": "isiscb:statusActive",
			"dc:title":            "A History of Science",
		},
		// No @id, dropped.
		{"dc:title": "Orphan"},
		// Duplicate @id, dropped.
		{
			"@id":             "https://data.isiscb.org/citation/CBB000001",
			"isiscb:recordID": "CBB000001",
		},
	}

	res := buildDocuments(docs, relation.Citation, now)
	require.Len(t, res, 1)

	d := res[0]
	assert.Equal(t, "CBB000001", d.RecordID)
	assert.Equal(t, "citation", d.Kind)
	assert.Equal(t, "Book", d.RecordType)
	assert.Equal(t, "isiscb:statusActive", d.Status)
	assert.Contains(t, d.Doc, "A History of Science")
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, now, d.CreatedAt)
}

func TestBuildDocumentsStableIDs(t *testing.T) {
	now := time.Now()
	doc := jsonld.Fragment{
		"@id":             "https://data.isiscb.org/authority/CBA000123",
		"@type":           "isiscb:Person",
		"isiscb:recordID": "CBA000123",
	}

	// Same @id always yields the same row key.
	a := buildDocuments([]jsonld.Fragment{doc}, relation.Authority, now)
	b := buildDocuments([]jsonld.Fragment{doc}, relation.Authority, now)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].ID, b[0].ID)
}

func TestRecordTypeToken(t *testing.T) {
	tests := []struct {
		msg   string
		types any
		want  string
	}{
		{"prefixed last", []any{"schema:Person", "isiscb:Person"}, "Person"},
		{"unmapped", []any{"isiscb:UnmappedType", "isiscb:Hologram"}, "Hologram"},
		{"plain string", "isiscb:Book", "Book"},
		{"no project class", []any{"schema:Thing"}, "schema:Thing"},
		{"missing", nil, ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, recordTypeToken(v.types), v.msg)
	}
}
