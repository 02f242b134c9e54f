/*
Copyright © 2025 coronium

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"

	"github.com/coronium/isiscb-jsonld-conversion/internal/ioconvert"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/batch"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
)

// getBatchCmd returns the batch command.
func getBatchCmd() *cobra.Command {
	var batchesFile string

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert several CSV files described in batches.yaml",
		Long: `Convert every input file listed in the batches file. Each entry
names a CSV file, its kind (authorities or citations), and optionally
an output file.

The default batches file lives next to config.yaml; use --batches to
point at another one.

Examples:
  isiscb batch
  isiscb batch --batches ./my-batches.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(batchesFile)
		},
	}

	batchCmd.Flags().StringVar(&batchesFile, "batches", "",
		"batches YAML file (default: batches.yaml in the config dir)")

	return batchCmd
}

func runBatch(batchesFile string) error {
	if batchesFile == "" {
		batchesFile = config.BatchesFilePath(cfg.HomeDir)
	}

	jobs, err := batch.Read(batchesFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(jobs) == 0 {
		gn.Warn("No batches found in <em>%s</em>", batchesFile)
		return nil
	}

	conv, err := ioconvert.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ctx := context.Background()
	start := time.Now()
	successCount := 0
	errorCount := 0
	total, valid, invalid := 0, 0, 0

	for i, job := range jobs {
		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		gn.Info("Batch [%d/%d]: %s", i+1, len(jobs), job.Name)
		fmt.Println(strings.Repeat("─", 60))

		slog.Info("Processing batch",
			"index", i+1,
			"total", len(jobs),
			"name", job.Name,
			"kind", job.Kind,
			"input", job.Input,
		)

		var sum *ioconvert.Summary
		if job.Kind == "authorities" {
			sum, err = conv.ConvertAuthorities(ctx, job.Input, job.Output)
		} else {
			sum, err = conv.ConvertCitations(ctx, job.Input, job.Output)
		}
		if err != nil {
			errorCount++
			slog.Error("Failed to process batch",
				"name", job.Name,
				"error", err,
			)
			gn.PrintErrorMessage(err)
			// Continue with next batch instead of failing
			continue
		}

		successCount++
		total += sum.Total
		valid += sum.Valid
		invalid += sum.Invalid
	}

	slog.Info("Batch processing complete",
		"success", successCount,
		"errors", errorCount,
		"records", total,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	gn.Info(`Batch processing complete
Batches succeeded: %d, failed %d, total %d.
Records valid: %d, invalid %d, total %d.
Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		len(jobs),
		valid,
		invalid,
		total,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)

	if errorCount > 0 && successCount == 0 {
		return batchFailedError(errorCount)
	}

	if errorCount > 0 {
		slog.Warn("Some batches failed to process",
			"failed", errorCount,
			"succeeded", successCount)
	}
	return nil
}

func batchFailedError(count int) error {
	return fmt.Errorf("all %d batches failed", count)
}
