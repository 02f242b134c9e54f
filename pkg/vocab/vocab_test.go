package vocab_test

import (
	"testing"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple token", "Author", "AUTHOR"},
		{"already normalized", "BOOK_SERIES", "BOOK_SERIES"},
		{"spaces to underscores", "Committee Member", "COMMITTEE_MEMBER"},
		{"trims whitespace", "  Editor ", "EDITOR"},
		{"mixed case", "aRchIval Repository", "ARCHIVAL_REPOSITORY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vocab.NormalizeType(tt.input))
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "AUTHOR", "author"},
		{"two words", "BOOK_SERIES", "bookSeries"},
		{"three words", "IS_REVIEWED_BY", "isReviewedBy"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vocab.CamelCase(tt.input))
		})
	}
}

func TestFieldProperty(t *testing.T) {
	assert.Equal(t, "dc:title", vocab.FieldProperty("title"))
	assert.Equal(t, "dc:creator", vocab.FieldProperty("author"))
	assert.Equal(t, "isiscb:extent", vocab.FieldProperty("extent"))
}

func TestExtensionProperty(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		key      string
		expected string
	}{
		{"identifier record id", "identifier", "recordID", "isiscb:recordID"},
		{"suffix match is case-insensitive", "title", "maintitle", "isiscb:mainTitle"},
		{"date normalized year", "date", "yearNormalized", "isiscb:yearNormalized"},
		{"unregistered key synthesized", "title", "shortTitle", "isiscb:shortTitle"},
		{"unknown field synthesized", "extent", "pageCount", "isiscb:pageCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected,
				vocab.ExtensionProperty(tt.field, tt.key))
		})
	}
}

func TestPropertyFor(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"author", "Author", "dc:creator"},
		{"editor", "Editor", "schema:editor"},
		{"subject", "SUBJECT", "dc:subject"},
		{"periodical", "Periodical", "schema:isPartOf"},
		{"book series", "Book_Series", "schema:isPartOf"},
		{"publisher", "Publisher", "dc:publisher"},
		{"school", "School", "bibo:degreeGrantor"},
		{"meeting", "Meeting", "bibo:presentedAt"},
		{"broader term", "Broader Term", "skos:broader"},
		{"citation-side is part of", "Is Part Of", "dcterms:isPartOf"},
		{"citation-side reviews", "Reviews", "isiscb:reviews"},
		{"unknown token synthesized", "Weird_Role_XYZ", "isiscb:weirdRoleXyz"},
		{"unknown token with spaces", "Guest Curator", "isiscb:guestCurator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vocab.PropertyFor(tt.token))
		})
	}
}

func TestClassURIFor(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"author", "Author", "isiscb:author"},
		{"book series", "Book_Series", "isiscb:bookSeries"},
		{"archival repository", "Archival_Repository", "isiscb:archivalRepository"},
		{"unknown token synthesized", "Weird_Role_XYZ", "isiscb:weirdRoleXyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, vocab.ClassURIFor(tt.token))
		})
	}
}

func TestTypeClasses(t *testing.T) {
	t.Run("known authority type keeps source tag last", func(t *testing.T) {
		res := vocab.AuthorityTypeClasses("Person")
		assert.Equal(t, []string{"schema:Person", "foaf:Person", "isiscb:Person"}, res)
	})

	t.Run("authority type with spaces", func(t *testing.T) {
		res := vocab.AuthorityTypeClasses("Geographic Term")
		assert.Equal(t, []string{"schema:Place", "isiscb:GeographicTerm"}, res)
	})

	t.Run("unknown type falls back but keeps source tag", func(t *testing.T) {
		res := vocab.AuthorityTypeClasses("Widget")
		assert.Equal(t, []string{"isiscb:UnmappedType", "isiscb:Widget"}, res)
	})

	t.Run("empty type", func(t *testing.T) {
		res := vocab.CitationTypeClasses("")
		assert.Equal(t, []string{"isiscb:UnknownType"}, res)
	})

	t.Run("known citation type", func(t *testing.T) {
		res := vocab.CitationTypeClasses("Conference Proceeding")
		assert.Equal(t, []string{"bibo:Proceedings", "isiscb:ConferenceProceeding"}, res)
	})
}

func TestContextDocument(t *testing.T) {
	ctx := vocab.ContextDocument()

	t.Run("contains namespaces", func(t *testing.T) {
		assert.Equal(t, "http://purl.org/dc/elements/1.1/", ctx["dc"])
		assert.Equal(t, "http://schema.org/", ctx["schema"])
		assert.Equal(t, "https://ontology.isiscb.org/vocabulary/", ctx["isiscb"])
	})

	t.Run("field aliases point at primary", func(t *testing.T) {
		alias, ok := ctx["schema:author"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "dc:creator", alias["@id"])
	})

	t.Run("subPropertyOf wins over equivalents", func(t *testing.T) {
		editor, ok := ctx["schema:editor"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "dc:contributor", editor["rdfs:subPropertyOf"])
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		assert.Equal(t, ctx, vocab.ContextDocument())
	})
}

func TestIsContributorLike(t *testing.T) {
	assert.True(t, vocab.IsContributorLike("ADVISOR"))
	assert.True(t, vocab.IsContributorLike("PRESENTING_GROUP"))
	assert.False(t, vocab.IsContributorLike("AUTHOR"))
	assert.False(t, vocab.IsContributorLike("SUBJECT"))
}
