// Package schema provides the database models of the document store:
// converted JSON-LD documents and the conversion runs that produced
// them.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Document is one converted JSON-LD document.
type Document struct {
	// ID is UUID v5 generated from the document @id using
	// DNS:"globalnames.org".
	ID string `db:"id" ddl:"UUID PRIMARY KEY"`

	// RecordID is the original IsisCB record id (CBA/CBB prefixed).
	RecordID string `db:"record_id" ddl:"VARCHAR(50) NOT NULL"`

	// Kind is "authority" or "citation".
	Kind string `db:"kind" ddl:"VARCHAR(20) NOT NULL"`

	// RecordType is the source record type token, e.g. "Person".
	RecordType string `db:"record_type" ddl:"VARCHAR(50)"`

	// Status is the converted record status, e.g.
	// "isiscb:statusActive".
	Status string `db:"status" ddl:"VARCHAR(50)"`

	// Doc is the JSON-LD document body.
	Doc string `db:"doc" ddl:"JSONB NOT NULL"`

	// CreatedAt records when the document was stored.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// ConversionRun records one conversion of an input file.
type ConversionRun struct {
	// ID is a random UUID assigned per run.
	ID string `db:"id" ddl:"UUID PRIMARY KEY"`

	// Kind is "authorities" or "citations".
	Kind string `db:"kind" ddl:"VARCHAR(20) NOT NULL"`

	// InputFile is the converted CSV file.
	InputFile string `db:"input_file" ddl:"TEXT"`

	// OutputFile is the produced JSON-LD file.
	OutputFile string `db:"output_file" ddl:"TEXT"`

	// Total is the number of records in the input.
	Total int `db:"total" ddl:"INT"`

	// Valid is the number of records that converted and validated.
	Valid int `db:"valid" ddl:"INT"`

	// Invalid is the number of records that failed validation.
	Invalid int `db:"invalid" ddl:"INT"`

	// StartedAt is the start timestamp of the run.
	StartedAt time.Time `db:"started_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`

	// DurationSec is the run duration in seconds.
	DurationSec float64 `db:"duration_sec" ddl:"DOUBLE PRECISION"`
}
