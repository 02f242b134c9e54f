package jsonld_test

import (
	"testing"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	b := jsonld.NewBuilder()

	b.Set("dc:title", "First")
	b.Set("dc:title", "Second")

	assert.Equal(t, "First", b.Fragment()["dc:title"], "first writer wins")
}

func TestAdd(t *testing.T) {
	t.Run("absent key gets value as is", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.Add("schema:isPartOf", map[string]any{"@id": "a"})

		v, ok := b.Fragment()["schema:isPartOf"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "a", v["@id"])
	})

	t.Run("second writer creates two-element array", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.Add("schema:isPartOf", map[string]any{"@id": "a"})
		b.Add("schema:isPartOf", map[string]any{"@id": "b"})

		arr, ok := b.Fragment()["schema:isPartOf"].([]any)
		require.True(t, ok)
		require.Len(t, arr, 2)
		assert.Equal(t, "a", arr[0].(map[string]any)["@id"])
		assert.Equal(t, "b", arr[1].(map[string]any)["@id"])
	})

	t.Run("third writer appends", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.Add("dc:contributor", "x")
		b.Add("dc:contributor", "y")
		b.Add("dc:contributor", "z")

		arr, ok := b.Fragment()["dc:contributor"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"x", "y", "z"}, arr)
	})
}

func TestAppendTypeTag(t *testing.T) {
	t.Run("extends existing type array", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.Add("bibo:degreeGrantor", map[string]any{
			"@type": []string{"schema:Organization"},
		})
		b.AppendTypeTag("bibo:degreeGrantor", "schema:CollegeOrUniversity")

		obj := b.Fragment()["bibo:degreeGrantor"].(map[string]any)
		assert.Equal(t,
			[]string{"schema:Organization", "schema:CollegeOrUniversity"},
			obj["@type"])
	})

	t.Run("tags only first object of an array", func(t *testing.T) {
		first := map[string]any{"@type": []string{"schema:Event"}}
		second := map[string]any{"@type": []string{"schema:Event"}}
		b := jsonld.NewBuilder()
		b.Add("bibo:presentedAt", first)
		b.Add("bibo:presentedAt", second)
		b.AppendTypeTag("bibo:presentedAt", "vivo:ArchivalOrganization")

		assert.Equal(t,
			[]string{"schema:Event", "vivo:ArchivalOrganization"},
			first["@type"])
		assert.Equal(t, []string{"schema:Event"}, second["@type"])
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.AppendTypeTag("missing", "schema:Thing")
		assert.Empty(t, b.Fragment())
	})

	t.Run("scalar type becomes array", func(t *testing.T) {
		b := jsonld.NewBuilder()
		b.Add("k", map[string]any{"@type": "schema:Place"})
		b.AppendTypeTag("k", "schema:City")

		obj := b.Fragment()["k"].(map[string]any)
		assert.Equal(t, []string{"schema:Place", "schema:City"}, obj["@type"])
	})
}

func TestMerge(t *testing.T) {
	b := jsonld.NewBuilder()
	b.Add("dc:subject", "history")
	b.Merge(jsonld.Fragment{
		"dc:subject":  "science",
		"dc:language": "en",
	})

	frag := b.Fragment()
	assert.Equal(t, []any{"history", "science"}, frag["dc:subject"])
	assert.Equal(t, "en", frag["dc:language"])
}

func TestEmptyBuilder(t *testing.T) {
	b := jsonld.NewBuilder()
	require.NotNil(t, b.Fragment())
	assert.Empty(t, b.Fragment())
	assert.Zero(t, b.Len())
}
