package iostore

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/schema"
)

var documentColumns = []string{
	"id", "record_id", "kind", "record_type",
	"status", "doc", "created_at",
}

// Store loads a converted JSON-LD file into the documents table.
// Existing documents of the same kind are replaced. Returns the
// number of stored documents.
func (o *Operator) Store(
	ctx context.Context,
	cfg *config.Config,
	kind relation.Kind,
	jsonFile string,
) (int, error) {
	if o.pool == nil {
		return 0, NotConnectedError()
	}

	start := time.Now()

	docs, err := readDocuments(jsonFile)
	if err != nil {
		return 0, err
	}
	records := buildDocuments(docs, kind, start)

	slog.Info("Storing documents",
		"kind", kind.String(),
		"input", jsonFile,
		"documents", len(records),
	)
	gn.Info("Storing %s documents from <em>%s</em>",
		humanize.Comma(int64(len(records))), jsonFile)

	// Re-storing a file replaces the documents of its kind.
	_, err = o.pool.Exec(ctx,
		"DELETE FROM documents WHERE kind = $1", kind.String())
	if err != nil {
		return 0, InsertError("documents", err)
	}

	batchSize := cfg.Database.BatchSize
	if batchSize == 0 {
		batchSize = 5000
	}

	bar := newProgressBar(len(records), "Storing: ")
	defer bar.Finish()

	stored := 0
	for i := 0; i < len(records); i += batchSize {
		end := min(i+batchSize, len(records))
		batch := records[i:end]

		rows := make([][]any, len(batch))
		for j, d := range batch {
			rows[j] = []any{
				d.ID, d.RecordID, d.Kind, d.RecordType,
				d.Status, d.Doc, d.CreatedAt,
			}
		}

		copyCount, err := o.pool.CopyFrom(
			ctx,
			pgx.Identifier{"documents"},
			documentColumns,
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return stored, InsertError("documents", err)
		}
		stored += int(copyCount)
		bar.Add(len(batch))
	}

	run := schema.ConversionRun{
		ID:          uuid.NewString(),
		Kind:        kind.String(),
		InputFile:   jsonFile,
		Total:       len(docs),
		Valid:       stored,
		Invalid:     len(docs) - stored,
		StartedAt:   start,
		DurationSec: time.Since(start).Seconds(),
	}
	if err = o.saveRun(ctx, run); err != nil {
		return stored, err
	}

	slog.Info("Documents stored",
		"kind", kind.String(),
		"stored", stored,
		"duration", gnfmt.TimeString(run.DurationSec),
	)
	gn.Info("Stored <em>%s</em> documents in %s",
		humanize.Comma(int64(stored)),
		gnfmt.TimeString(run.DurationSec))

	return stored, nil
}

func (o *Operator) saveRun(
	ctx context.Context,
	run schema.ConversionRun,
) error {
	query := `
		INSERT INTO conversion_runs
			(id, kind, input_file, output_file, total, valid,
			invalid, started_at, duration_sec)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := o.pool.Exec(ctx, query,
		run.ID, run.Kind, run.InputFile, run.OutputFile,
		run.Total, run.Valid, run.Invalid,
		run.StartedAt, run.DurationSec,
	)
	if err != nil {
		return InsertError("conversion_runs", err)
	}
	return nil
}

// readDocuments loads a JSON array of JSON-LD documents.
func readDocuments(path string) ([]jsonld.Fragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	var docs []jsonld.Fragment
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &docs); err != nil {
		return nil, DecodeError(path, err)
	}
	return docs, nil
}

// buildDocuments converts JSON-LD documents into database rows.
// Documents without an @id are dropped, the row key derives from it.
func buildDocuments(
	docs []jsonld.Fragment,
	kind relation.Kind,
	now time.Time,
) []schema.Document {
	enc := gnfmt.GNjson{}
	res := make([]schema.Document, 0, len(docs))
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		id, _ := doc["@id"].(string)
		if id == "" || seen[id] {
			slog.Warn("Skipping document without usable @id")
			continue
		}
		seen[id] = true

		body, err := enc.Encode(doc)
		if err != nil {
			slog.Warn("Cannot encode document", "id", id, "error", err)
			continue
		}

		recordID, _ := doc["isiscb:recordID"].(string)
		status, _ := doc["isiscb:recordStatus"].(string)

		res = append(res, schema.Document{
			ID:         gnuuid.New(id).String(),
			RecordID:   recordID,
			Kind:       kind.String(),
			RecordType: recordTypeToken(doc["@type"]),
			Status:     status,
			Doc:        string(body),
			CreatedAt:  now,
		})
	}
	return res
}

// recordTypeToken extracts the source record type from the @type
// classes. The project-prefixed class carries the original token.
func recordTypeToken(types any) string {
	classes, ok := types.([]any)
	if !ok {
		if s, isStr := types.(string); isStr {
			return strings.TrimPrefix(s, "isiscb:")
		}
		return ""
	}
	for i := len(classes) - 1; i >= 0; i-- {
		s, isStr := classes[i].(string)
		if isStr && strings.HasPrefix(s, "isiscb:") {
			return strings.TrimPrefix(s, "isiscb:")
		}
	}
	if len(classes) > 0 {
		if s, isStr := classes[0].(string); isStr {
			return s
		}
	}
	return ""
}
