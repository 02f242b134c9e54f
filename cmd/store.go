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

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/coronium/isiscb-jsonld-conversion/internal/iostore"
	"github.com/coronium/isiscb-jsonld-conversion/pkg/relation"
)

// getStoreCmd returns the store command with its kind subcommands.
func getStoreCmd() *cobra.Command {
	var target string
	var sqliteFile string

	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Load converted JSON-LD documents into the document store",
		Long: `Load a converted JSON-LD file into the document store. The kind
of the documents (authorities or citations) is given as a subcommand.

The default target is the PostgreSQL database from the configuration;
--to sqlite writes into a local SQLite file instead. Re-storing a file
replaces the documents of its kind.

Examples:
  isiscb store citations citations.json
  isiscb store authorities auth.json --to sqlite --sqlite-file store.db`,
	}

	authoritiesCmd := &cobra.Command{
		Use:   "authorities JSON-FILE",
		Short: "Store converted authority documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(relation.Authority, args[0],
				target, sqliteFile)
		},
	}

	citationsCmd := &cobra.Command{
		Use:   "citations JSON-FILE",
		Short: "Store converted citation documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(relation.Citation, args[0],
				target, sqliteFile)
		},
	}

	storeCmd.PersistentFlags().StringVar(&target, "to", "postgres",
		"storage target: postgres or sqlite")
	storeCmd.PersistentFlags().StringVar(&sqliteFile, "sqlite-file",
		"isiscb.db", "SQLite database file for --to sqlite")

	storeCmd.AddCommand(authoritiesCmd)
	storeCmd.AddCommand(citationsCmd)

	return storeCmd
}

func runStore(
	kind relation.Kind,
	jsonFile, target, sqliteFile string,
) error {
	ctx := context.Background()

	switch target {
	case "sqlite":
		_, err := iostore.StoreSQLite(ctx, kind, jsonFile, sqliteFile)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		return nil
	case "postgres":
		op := iostore.New()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		defer op.Close()

		gn.Info("Connected to database: %s@%s:%d/%s",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)

		if _, err := op.Store(ctx, cfg, kind, jsonFile); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		return nil
	default:
		err := fmt.Errorf("unknown storage target %q", target)
		gn.PrintErrorMessage(err)
		return err
	}
}
