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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/coronium/isiscb-jsonld-conversion/internal/ioconvert"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/batch"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/config"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

// getConvertCmd returns the convert command with its kind
// subcommands.
func getConvertCmd() *cobra.Command {
	var output string
	var noValidation bool

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert IsisCB CSV files to JSON-LD",
		Long: `Convert an IsisCB CSV export into a JSON array of JSON-LD
documents. The kind of the export (authorities or citations) is given
as a subcommand.

When the output file is not set, it derives from the input file by
replacing the extension with .json. Documents are validated against
the built-in JSON schemas unless --no-validation is set; validation
problems go to <output>_validation.json.

Examples:
  isiscb convert citations citations.csv
  isiscb convert authorities authorities.csv -o auth.json
  isiscb convert citations citations.csv --no-validation`,
	}

	authoritiesCmd := &cobra.Command{
		Use:   "authorities CSV-FILE",
		Short: "Convert an authorities CSV file to JSON-LD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(relation.Authority, args[0],
				output, noValidation)
		},
	}

	citationsCmd := &cobra.Command{
		Use:   "citations CSV-FILE",
		Short: "Convert a citations CSV file to JSON-LD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(relation.Citation, args[0],
				output, noValidation)
		},
	}

	convertCmd.PersistentFlags().StringVarP(&output, "output", "o",
		"", "output JSON file (default: input with .json extension)")
	convertCmd.PersistentFlags().BoolVar(&noValidation, "no-validation",
		false, "skip JSON schema validation of produced documents")

	convertCmd.AddCommand(authoritiesCmd)
	convertCmd.AddCommand(citationsCmd)

	return convertCmd
}

func runConvert(
	kind relation.Kind,
	input, output string,
	noValidation bool,
) error {
	if output == "" {
		output = batch.DeriveOutput(input)
	}
	if noValidation {
		withValidation := false
		cfg.Update([]config.Option{
			config.OptConvertWithValidation(&withValidation),
		})
	}

	conv, err := ioconvert.New(cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	ctx := context.Background()
	if kind == relation.Authority {
		_, err = conv.ConvertAuthorities(ctx, input, output)
	} else {
		_, err = conv.ConvertCitations(ctx, input, output)
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
