package iostore_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/coronium/isiscb-jsonld-conversion/internal/iostore"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

func writeDocs(t *testing.T, docs []jsonld.Fragment) string {
	t.Helper()
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(docs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestStoreSQLite(t *testing.T) {
	docs := []jsonld.Fragment{
		{
			"@id":                 "https://data.isiscb.org/citation/CBB000001",
			"@type":               []any{"bibo:Book", "isiscb:Book"},
			"isiscb:recordID":     "CBB000001",
			"isiscb:recordStatus": "isiscb:statusActive",
			"dc:title":            "A History of Science",
		},
		{
			"@id":             "https://data.isiscb.org/citation/CBB000002",
			"@type":           []any{"isiscb:Article"},
			"isiscb:recordID": "CBB000002",
		},
	}
	jsonFile := writeDocs(t, docs)
	dbFile := filepath.Join(filepath.Dir(jsonFile), "store.db")

	ctx := context.Background()
	stored, err := iostore.StoreSQLite(ctx, relation.Citation, jsonFile, dbFile)
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	db, err := sql.Open("sqlite", dbFile)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var recordType string
	err = db.QueryRow(
		"SELECT record_type FROM documents WHERE record_id = 'CBB000001'",
	).Scan(&recordType)
	require.NoError(t, err)
	assert.Equal(t, "Book", recordType)

	var runs int
	err = db.QueryRow("SELECT COUNT(*) FROM conversion_runs").Scan(&runs)
	require.NoError(t, err)
	assert.Equal(t, 1, runs)
}

func TestStoreSQLiteReplacesKind(t *testing.T) {
	docs := []jsonld.Fragment{
		{
			"@id":             "https://data.isiscb.org/authority/CBA000001",
			"@type":           []any{"isiscb:Person"},
			"isiscb:recordID": "CBA000001",
		},
	}
	jsonFile := writeDocs(t, docs)
	dbFile := filepath.Join(filepath.Dir(jsonFile), "store.db")

	ctx := context.Background()
	_, err := iostore.StoreSQLite(ctx, relation.Authority, jsonFile, dbFile)
	require.NoError(t, err)

	// Storing the same file again does not duplicate documents.
	stored, err := iostore.StoreSQLite(ctx, relation.Authority, jsonFile, dbFile)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	db, err := sql.Open("sqlite", dbFile)
	require.NoError(t, err)
	defer db.Close()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStoreSQLiteMissingInput(t *testing.T) {
	ctx := context.Background()
	_, err := iostore.StoreSQLite(
		ctx, relation.Citation, "/no/such/docs.json",
		filepath.Join(t.TempDir(), "store.db"))
	assert.Error(t, err)
}
