package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/funvibe/regexeze/internal/history"
	"github.com/funvibe/regexeze/internal/regex"
)

func newMatchCmd() *cobra.Command {
	var pattern, filename, targetString string
	var noHistory, verbose bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Translate Regexeze source and test it against a target string",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetString == "" {
				return fmt.Errorf("--target-string is required")
			}

			source, from, err := readSource(pattern, filename)
			if err != nil {
				return err
			}

			start := time.Now()
			cp, compileErr := regex.Compile(source)
			var result *regex.MatchResult
			var matchErr error
			if compileErr != nil {
				matchErr = compileErr
			} else {
				result, matchErr = cp.Match(targetString)
			}
			duration := time.Since(start)

			store, herr := openHistory(noHistory)
			if herr == nil && store != nil {
				resultText := "no match"
				recordID := ""
				if matchErr != nil {
					resultText = matchErr.Error()
				} else {
					recordID = cp.ID.String()
					if result != nil {
						resultText = result.Full
					}
				}
				_ = store.Record(history.Record{
					ID:        recordID,
					Command:   "match from " + from,
					Pattern:   source,
					Result:    resultText,
					Succeeded: matchErr == nil,
					Duration:  duration,
					CreatedAt: start,
				})
				store.Close()
			}

			if matchErr != nil {
				return matchErr
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "id: %s\n", cp.ID)
			}
			printMatchReport(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Regexeze source given inline")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "path to a file containing Regexeze source")
	cmd.Flags().StringVarP(&targetString, "target-string", "t", "", "the string to match against")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this invocation in the history store")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the compiled pattern id, for cross-referencing with history")
	cmd.MarkFlagsMutuallyExclusive("pattern", "filename")

	return cmd
}

func printMatchReport(cmd *cobra.Command, result *regex.MatchResult) {
	out := cmd.OutOrStdout()
	if result == nil {
		fmt.Fprintln(out, "No match")
		return
	}

	fmt.Fprintln(out, "Match successful")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "All groups:")
	fmt.Fprintf(out, "\tFull match: %s\n", result.Full)
	for i, g := range result.Groups {
		if i == 0 {
			continue
		}
		fmt.Fprintf(out, "\tGroup %d: %s\n", i, g)
	}

	if len(result.Named) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Named groups:")
		for name, value := range result.Named {
			fmt.Fprintf(out, "\t%s: %s\n", name, value)
		}
	}
}
