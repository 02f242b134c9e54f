// Package ioconvert runs the CSV to JSON-LD conversion pipeline. It
// reads tabular exports, converts rows with concurrent workers,
// validates the produced documents and writes them out as one JSON
// array.
package ioconvert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/coronium/isiscb-jsonld-conversion/internal/iocsv"
	"github.com/coronium/isiscb-jsonld-conversion/internal/iovalidate"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/convert"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/jsonld"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/vocab"
)

// Summary reports the outcome of one conversion run.
type Summary struct {
	Total   int                 `json:"total"`
	Valid   int                 `json:"valid"`
	Invalid int                 `json:"invalid"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Converter runs conversions according to the configuration.
type Converter struct {
	cfg       *config.Config
	validator *iovalidate.Validator
}

// New creates a Converter. The embedded validation schemas are
// compiled up front so a packaging problem surfaces before any work
// is done.
func New(cfg *config.Config) (*Converter, error) {
	v, err := iovalidate.New()
	if err != nil {
		return nil, err
	}
	return &Converter{cfg: cfg, validator: v}, nil
}

// ConvertAuthorities converts an authorities CSV file to JSON-LD.
func (c *Converter) ConvertAuthorities(
	ctx context.Context,
	in, out string,
) (*Summary, error) {
	rec := convert.NewAuthorityRecord(c.cfg.Convert.BaseURI)
	return c.run(ctx, relation.Authority, rec.Convert, in, out)
}

// ConvertCitations converts a citations CSV file to JSON-LD.
func (c *Converter) ConvertCitations(
	ctx context.Context,
	in, out string,
) (*Summary, error) {
	rec := convert.NewCitationRecord(c.cfg.Convert.BaseURI)
	return c.run(ctx, relation.Citation, rec.Convert, in, out)
}

type rowConvertFunc func(convert.Row) (jsonld.Fragment, string, error)

type rowJob struct {
	idx int
	row convert.Row
}

type rowResult struct {
	idx      int
	doc      jsonld.Fragment
	recordID string
	err      error
}

// run executes the pipeline for one input file.
//
// Pipeline:
//
//	Stage 1: feed rows → chIn
//	Stage 2: workers convert rows → chOut
//	Stage 3: collector validates, keeps documents in row order
func (c *Converter) run(
	ctx context.Context,
	kind relation.Kind,
	conv rowConvertFunc,
	in, out string,
) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()

	rows, err := iocsv.ReadRows(in)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting conversion",
		"run_id", runID,
		"kind", kind.String(),
		"input", in,
		"records", len(rows),
	)
	gn.Info("Converting %s records from <em>%s</em>",
		humanize.Comma(int64(len(rows))), in)

	jobsNum := c.cfg.JobsNumber
	if jobsNum == 0 {
		jobsNum = 4
	}

	chIn := make(chan rowJob)
	chOut := make(chan rowResult)

	g, gCtx := errgroup.WithContext(ctx)

	// Stage 1: feed rows.
	g.Go(func() error {
		defer close(chIn)
		for i, row := range rows {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case chIn <- rowJob{idx: i, row: row}:
			}
		}
		return nil
	})

	// Stage 2: convert with workers.
	var wg sync.WaitGroup
	for range jobsNum {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for job := range chIn {
				doc, recordID, err := conv(job.row)
				res := rowResult{
					idx:      job.idx,
					doc:      doc,
					recordID: recordID,
					err:      err,
				}
				select {
				case <-gCtx.Done():
					return gCtx.Err()
				case chOut <- res:
				}
			}
			return nil
		})
	}

	// Close chOut when workers are done.
	go func() {
		wg.Wait()
		close(chOut)
	}()

	// Stage 3: validate and collect in row order.
	sum := &Summary{Total: len(rows), Errors: make(map[string][]string)}
	docs := make([]jsonld.Fragment, len(rows))

	bar := newProgressBar(len(rows), "Converting: ")

	g.Go(func() error {
		for r := range chOut {
			bar.Increment()
			if r.err != nil {
				key := r.recordID
				if key == "" {
					// +2 accounts for the header line.
					key = fmt.Sprintf("row-%d", r.idx+2)
				}
				sum.Errors[key] = append(sum.Errors[key], r.err.Error())
				continue
			}

			r.doc["@context"] = vocab.ContextDocument()

			if c.cfg.Validation() {
				ok, probs := c.validator.Validate(r.doc, kind)
				if !ok {
					sum.Errors[r.recordID] = append(
						sum.Errors[r.recordID], probs...,
					)
				}
			}
			docs[r.idx] = r.doc
		}
		return nil
	})

	err = g.Wait()
	bar.Finish()
	if err != nil {
		return nil, CancelledError(err)
	}

	// Compact out rows that failed to convert.
	var converted []jsonld.Fragment
	for _, doc := range docs {
		if doc != nil {
			converted = append(converted, doc)
		}
	}

	sum.Invalid = len(sum.Errors)
	sum.Valid = sum.Total - sum.Invalid

	if len(converted) == 0 && sum.Total > 0 {
		return nil, AllRecordsFailedError(in, sum.Total)
	}

	if err = writeDocuments(out, converted); err != nil {
		return nil, err
	}

	if sum.Invalid > 0 {
		if err = writeReport(reportPath(out), sum); err != nil {
			return nil, err
		}
	}

	slog.Info("Conversion complete",
		"run_id", runID,
		"kind", kind.String(),
		"output", out,
		"valid", sum.Valid,
		"invalid", sum.Invalid,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info(`Conversion complete
Records valid: %s, invalid %s, total %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(sum.Valid)),
		humanize.Comma(int64(sum.Invalid)),
		humanize.Comma(int64(sum.Total)),
		gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return sum, nil
}

func writeDocuments(path string, docs []jsonld.Fragment) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(docs)
	if err != nil {
		return OutputFileError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return OutputFileError(path, err)
	}
	return nil
}

func writeReport(path string, sum *Summary) error {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(sum)
	if err != nil {
		return ReportError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return ReportError(path, err)
	}
	gn.Warn("Validation problems found, report: <em>%s</em>", path)
	return nil
}

// reportPath derives the validation report file name from the output
// file name.
func reportPath(out string) string {
	return strings.TrimSuffix(out, ".json") + "_validation.json"
}
