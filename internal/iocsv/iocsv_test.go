package iocsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/internal/iocsv"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestReadRows(t *testing.T) {
	path := writeCSV(t,
		"Record ID,Record Type,Title\n"+
			"CBB000001,Book,A History of Science\n"+
			"CBB000002,Article,NaN\n")

	rows, err := iocsv.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CBB000001", rows[0]["Record ID"])
	assert.Equal(t, "A History of Science", rows[0]["Title"])

	// Blank-equivalent cells behave as absent fields.
	assert.False(t, rows[1].Has("Title"))
	assert.True(t, rows[1].Has("Record Type"))
}

func TestReadRowsRagged(t *testing.T) {
	path := writeCSV(t,
		"Record ID,Record Type,Title\n"+
			"CBB000001,Book\n"+
			"CBB000002,Article,Title,Surplus\n")

	rows, err := iocsv.ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, ok := rows[0]["Title"]
	assert.False(t, ok)
	assert.Equal(t, "Title", rows[1]["Title"])
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := iocsv.ReadRows("/no/such/file.csv")
	assert.Error(t, err)
}
