package iostore

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/schema"
)

// SQLite stores documents in type-flexible columns, so the DDL is
// simpler than the PostgreSQL schema.
var sqliteDDL = []string{
	`CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    record_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    record_type TEXT,
    status TEXT,
    doc TEXT NOT NULL,
    created_at TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_record_id
    ON documents(record_id)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_kind
    ON documents(kind)`,
	`CREATE TABLE IF NOT EXISTS conversion_runs (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    input_file TEXT,
    output_file TEXT,
    total INTEGER,
    valid INTEGER,
    invalid INTEGER,
    started_at TEXT,
    duration_sec REAL
)`,
}

// StoreSQLite loads a converted JSON-LD file into a local SQLite
// database file. Existing documents of the same kind are replaced.
// Returns the number of stored documents.
func StoreSQLite(
	ctx context.Context,
	kind relation.Kind,
	jsonFile, dbFile string,
) (int, error) {
	start := time.Now()

	docs, err := readDocuments(jsonFile)
	if err != nil {
		return 0, err
	}
	records := buildDocuments(docs, kind, start)

	slog.Info("Storing documents",
		"kind", kind.String(),
		"input", jsonFile,
		"sqlite", dbFile,
		"documents", len(records),
	)
	gn.Info("Storing %s documents into <em>%s</em>",
		humanize.Comma(int64(len(records))), dbFile)

	db, err := sql.Open("sqlite", dbFile)
	if err != nil {
		return 0, SQLiteError(dbFile, err)
	}
	defer db.Close()

	for _, ddl := range sqliteDDL {
		if _, err = db.ExecContext(ctx, ddl); err != nil {
			return 0, SQLiteError(dbFile, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, SQLiteError(dbFile, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM documents WHERE kind = ?", kind.String())
	if err != nil {
		return 0, SQLiteError(dbFile, err)
	}

	insert := `
		INSERT OR REPLACE INTO documents
			(id, record_id, kind, record_type, status, doc, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	bar := newProgressBar(len(records), "Storing: ")
	defer bar.Finish()

	stored := 0
	for _, d := range records {
		_, err = tx.ExecContext(ctx, insert,
			d.ID, d.RecordID, d.Kind, d.RecordType, d.Status,
			d.Doc, d.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return stored, SQLiteError(dbFile, err)
		}
		stored++
		bar.Increment()
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
	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversion_runs
			(id, kind, input_file, output_file, total, valid,
			invalid, started_at, duration_sec)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Kind, run.InputFile, run.OutputFile,
		run.Total, run.Valid, run.Invalid,
		run.StartedAt.Format(time.RFC3339), run.DurationSec,
	)
	if err != nil {
		return stored, SQLiteError(dbFile, err)
	}

	if err = tx.Commit(); err != nil {
		return stored, SQLiteError(dbFile, err)
	}

	gn.Info("Stored <em>%s</em> documents in %s",
		humanize.Comma(int64(stored)),
		gnfmt.TimeString(time.Since(start).Seconds()))

	return stored, nil
}
