package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past translate/match invocations, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory(false)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No history recorded yet")
				return nil
			}

			for _, r := range records {
				status := "ok"
				if !r.Succeeded {
					status = "error"
				}
				when := strftime.Format("%Y-%m-%d %H:%M:%S", r.CreatedAt)
				fmt.Fprintf(out, "[%s] %s (%s, %s) id=%s\n", status, r.Pattern, when, humanize.Time(r.CreatedAt), r.ID)
				fmt.Fprintf(out, "\t%s: %s\n", r.Command, r.Result)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of history rows to show")
	return cmd
}
