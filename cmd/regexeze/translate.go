package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/funvibe/regexeze/internal/history"
	"github.com/funvibe/regexeze/internal/regex"
)

func newTranslateCmd() *cobra.Command {
	var pattern, filename string
	var noHistory, verbose bool

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate Regexeze source into regex text",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, from, err := readSource(pattern, filename)
			if err != nil {
				return err
			}

			start := time.Now()
			cp, translateErr := regex.Compile(source)
			duration := time.Since(start)

			store, herr := openHistory(noHistory)
			if herr == nil && store != nil {
				result := ""
				recordID := ""
				if translateErr != nil {
					result = translateErr.Error()
				} else {
					result = cp.Pattern
					recordID = cp.ID.String()
				}
				_ = store.Record(history.Record{
					ID:        recordID,
					Command:   "translate from " + from,
					Pattern:   source,
					Result:    result,
					Succeeded: translateErr == nil,
					Duration:  duration,
					CreatedAt: start,
				})
				store.Close()
			}

			if translateErr != nil {
				return translateErr
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "id: %s\n", cp.ID)
			}
			fmt.Fprintln(out, cp.Pattern)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Regexeze source given inline")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "path to a file containing Regexeze source")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this invocation in the history store")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the compiled pattern id, for cross-referencing with history")
	cmd.MarkFlagsMutuallyExclusive("pattern", "filename")

	return cmd
}
