package relation_test

import (
	"testing"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	t.Run("splits entries and key-value pairs", func(t *testing.T) {
		raw := "ACRType Author || AuthorityID CBA000123 || " +
			"AuthorityName Jane Doe // " +
			"ACRType Subject || AuthorityID CBA000456"

		entries := relation.ParseEntries(raw, "CBB001")
		require.Len(t, entries, 2)
		assert.Equal(t, "Author", entries[0]["ACRType"])
		assert.Equal(t, "CBA000123", entries[0]["AuthorityID"])
		assert.Equal(t, "Jane Doe", entries[0]["AuthorityName"])
		assert.Equal(t, "Subject", entries[1]["ACRType"])
	})

	t.Run("splits key from value on first space only", func(t *testing.T) {
		entries := relation.ParseEntries(
			"AuthorityName Mary Anne van der Berg", "CBB001")
		require.Len(t, entries, 1)
		assert.Equal(t, "Mary Anne van der Berg", entries[0]["AuthorityName"])
	})

	t.Run("blank input yields empty result", func(t *testing.T) {
		assert.Empty(t, relation.ParseEntries("", "CBB001"))
		assert.Empty(t, relation.ParseEntries("   ", "CBB001"))
	})

	t.Run("blocks without a space are skipped", func(t *testing.T) {
		entries := relation.ParseEntries(
			"Malformed || ACRType Author", "CBB001")
		require.Len(t, entries, 1)
		assert.Equal(t, "Author", entries[0]["ACRType"])
		_, ok := entries[0]["Malformed"]
		assert.False(t, ok)
	})

	t.Run("duplicate keys last write wins", func(t *testing.T) {
		entries := relation.ParseEntries(
			"ACRType Author || ACRType Editor", "CBB001")
		require.Len(t, entries, 1)
		assert.Equal(t, "Editor", entries[0]["ACRType"])
	})

	t.Run("values are trimmed", func(t *testing.T) {
		entries := relation.ParseEntries("ACRType  Author ", "CBB001")
		require.Len(t, entries, 1)
		assert.Equal(t, "Author", entries[0]["ACRType"])
	})
}

func TestClassify(t *testing.T) {
	c := relation.NewClassifier(relation.Authority, "https://data.isiscb.org")

	t.Run("buckets by normalized type preserving order", func(t *testing.T) {
		raw := "ACRType Author || AuthorityID CBA1 || ACRDisplayOrder 2.0 // " +
			"ACRType Author || AuthorityID CBA2 || ACRDisplayOrder 1.0 // " +
			"ACRType Committee Member || AuthorityID CBA3"
		entries := relation.ParseEntries(raw, "CBB001")
		bucket := c.Classify(entries, "CBB001")

		require.Len(t, bucket["AUTHOR"], 2)
		assert.Equal(t, "https://data.isiscb.org/authority/CBA1",
			bucket["AUTHOR"][0].TargetID)
		assert.Equal(t, "https://data.isiscb.org/authority/CBA2",
			bucket["AUTHOR"][1].TargetID)
		require.Len(t, bucket["COMMITTEE_MEMBER"], 1)
	})

	t.Run("entries without type or id are dropped", func(t *testing.T) {
		entries := []relation.Entry{
			{"AuthorityID": "CBA1"},
			{"ACRType": "Author"},
			{"ACRType": "Author", "AuthorityID": "CBA2"},
		}
		bucket := c.Classify(entries, "CBB001")

		require.Len(t, bucket, 1)
		require.Len(t, bucket["AUTHOR"], 1)
		for _, rels := range bucket {
			for _, r := range rels {
				assert.NotEmpty(t, r.TargetID)
				assert.NotEmpty(t, r.NormalizedType)
			}
		}
	})

	t.Run("display order defaults to 1.0", func(t *testing.T) {
		entries := []relation.Entry{
			{"ACRType": "Author", "AuthorityID": "CBA1"},
		}
		bucket := c.Classify(entries, "CBB001")
		r := bucket["AUTHOR"][0]
		assert.Equal(t, "1.0", r.DisplayOrder)
		assert.Equal(t, 1.0, r.OrderValue())
	})

	t.Run("unparsable display order defaults to 1.0", func(t *testing.T) {
		r := relation.Relationship{DisplayOrder: "first"}
		assert.Equal(t, 1.0, r.OrderValue())
	})

	t.Run("citation kind uses CCR tokens", func(t *testing.T) {
		cc := relation.NewClassifier(relation.Citation, "https://data.isiscb.org")
		entries := []relation.Entry{
			{
				"CCRType":       "Is Reviewed By",
				"CitationID":    "CBB900",
				"CitationTitle": "A review",
				"CCR_ID":        "CCR123",
			},
		}
		bucket := cc.Classify(entries, "CBB001")
		require.Len(t, bucket["IS_REVIEWED_BY"], 1)
		r := bucket["IS_REVIEWED_BY"][0]
		assert.Equal(t, "https://data.isiscb.org/citation/CBB900", r.TargetID)
		assert.Equal(t, "A review", r.Name)
		assert.Equal(t, "CCR123", r.RelationID)
	})
}

func TestRelationshipHelpers(t *testing.T) {
	t.Run("best name prefers display name", func(t *testing.T) {
		r := relation.Relationship{Name: "Doe, Jane", DisplayName: "Jane Doe"}
		assert.Equal(t, "Jane Doe", r.BestName())

		r = relation.Relationship{Name: "Doe, Jane", DisplayName: "   "}
		assert.Equal(t, "Doe, Jane", r.BestName())
	})

	t.Run("id suffix is last path segment", func(t *testing.T) {
		r := relation.Relationship{
			TargetID: "https://data.isiscb.org/authority/CBA000123",
		}
		assert.Equal(t, "CBA000123", r.IDSuffix())
	})
}

func TestParseClassifyRoundTrip(t *testing.T) {
	// Re-serializing parsed keys and values recovers the original
	// content modulo whitespace trimming.
	raw := "ACRType Author || AuthorityID CBA000123 || AuthorityName Jane Doe"
	entries := relation.ParseEntries(raw, "CBB001")
	require.Len(t, entries, 1)

	want := map[string]string{
		"ACRType":       "Author",
		"AuthorityID":   "CBA000123",
		"AuthorityName": "Jane Doe",
	}
	assert.Equal(t, want, map[string]string(entries[0]))
}
