package ioconvert_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coronium/isiscb-jsonld-conversion/internal/ioconvert"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestConvertCitations(t *testing.T) {
	in := writeCSV(t, "citations.csv",
		"Record ID,Record Type,Title,Language\n"+
			"CBB000001,Book,A History of Science,English\n"+
			"CBB000002,Article,Galileo and the Telescope,Italian\n")
	out := filepath.Join(filepath.Dir(in), "citations.json")

	cfg := config.New()
	cfg.JobsNumber = 2

	conv, err := ioconvert.New(cfg)
	require.NoError(t, err)

	sum, err := conv.ConvertCitations(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 2, sum.Valid)
	assert.Equal(t, 0, sum.Invalid)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(data, &docs))
	require.Len(t, docs, 2)

	// Row order survives the concurrent conversion.
	assert.Equal(t,
		"https://data.isiscb.org/citation/CBB000001", docs[0]["@id"])
	assert.Equal(t,
		"https://data.isiscb.org/citation/CBB000002", docs[1]["@id"])
	assert.Contains(t, docs[0], "@context")
	assert.Equal(t, "A History of Science", docs[0]["dc:title"])

	// No report file for a clean run.
	_, err = os.Stat(filepath.Dir(in) + "/citations_validation.json")
	assert.True(t, os.IsNotExist(err))
}

func TestConvertAuthorities(t *testing.T) {
	in := writeCSV(t, "authorities.csv",
		"Record ID,Record Type,Name\n"+
			"CBA000001,Person,\"Sarton, George\"\n")
	out := filepath.Join(filepath.Dir(in), "authorities.json")

	cfg := config.New()
	conv, err := ioconvert.New(cfg)
	require.NoError(t, err)

	sum, err := conv.ConvertAuthorities(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Valid)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(data, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Sarton, George", docs[0]["schema:name"])
}

func TestConvertReportsBadRows(t *testing.T) {
	// The second row has a blank Record ID and cannot convert.
	in := writeCSV(t, "citations.csv",
		"Record ID,Record Type,Title\n"+
			"CBB000001,Book,A History of Science\n"+
			",Book,No Identifier Here\n")
	out := filepath.Join(filepath.Dir(in), "citations.json")

	cfg := config.New()
	conv, err := ioconvert.New(cfg)
	require.NoError(t, err)

	sum, err := conv.ConvertCitations(context.Background(), in, out)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Valid)
	assert.Equal(t, 1, sum.Invalid)
	assert.Len(t, sum.Errors, 1)

	// The good row is still written.
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(data, &docs))
	assert.Len(t, docs, 1)

	// Problems end up in the validation report.
	report := filepath.Join(filepath.Dir(in), "citations_validation.json")
	data, err = os.ReadFile(report)
	require.NoError(t, err)
	var got ioconvert.Summary
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got.Invalid)
}

func TestConvertAllRowsFail(t *testing.T) {
	in := writeCSV(t, "citations.csv",
		"Record ID,Title\n"+
			",No Identifier Here\n")
	out := filepath.Join(filepath.Dir(in), "citations.json")

	cfg := config.New()
	conv, err := ioconvert.New(cfg)
	require.NoError(t, err)

	_, err = conv.ConvertCitations(context.Background(), in, out)
	assert.Error(t, err)
}

func TestConvertMissingInput(t *testing.T) {
	cfg := config.New()
	conv, err := ioconvert.New(cfg)
	require.NoError(t, err)

	_, err = conv.ConvertCitations(
		context.Background(), "/no/such/file.csv", "/tmp/out.json")
	assert.Error(t, err)
}
