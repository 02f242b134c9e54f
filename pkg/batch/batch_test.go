package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/batch"
)

func writeBatches(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batches.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestRead(t *testing.T) {
	path := writeBatches(t, `
batches:
  - name: authorities 2024
    kind: authorities
    input: /data/authorities.csv
    output: /data/authorities.json
  - kind: Citations
    input: /data/citations.csv
`)
	jobs, err := batch.Read(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "authorities 2024", jobs[0].Name)
	assert.Equal(t, "authorities", jobs[0].Kind)
	assert.Equal(t, "/data/authorities.json", jobs[0].Output)

	// Defaults: name from input, kind lowercased, output derived.
	assert.Equal(t, "/data/citations.csv", jobs[1].Name)
	assert.Equal(t, "citations", jobs[1].Kind)
	assert.Equal(t, "/data/citations.json", jobs[1].Output)
}

func TestReadBadKind(t *testing.T) {
	path := writeBatches(t, `
batches:
  - kind: records
    input: /data/records.csv
`)
	_, err := batch.Read(path)
	assert.Error(t, err)
}

func TestReadMissingInput(t *testing.T) {
	path := writeBatches(t, `
batches:
  - kind: citations
`)
	_, err := batch.Read(path)
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := batch.Read("/no/such/batches.yaml")
	assert.Error(t, err)
}

func TestDeriveOutput(t *testing.T) {
	tests := []struct{ msg, input, want string }{
		{"csv", "/data/authorities.csv", "/data/authorities.json"},
		{"no ext", "/data/authorities", "/data/authorities.json"},
		{"dot in dir", "/da.ta/authorities", "/da.ta/authorities.json"},
	}
	for _, v := range tests {
		assert.Equal(t, v.want, batch.DeriveOutput(v.input), v.msg)
	}
}
