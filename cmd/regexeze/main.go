// Command regexeze translates Regexeze source into PCRE-style regex text
// and can test the result against a target string.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// A caret diagnostic is two lines of ASCII art under the offending
		// token; give it a blank line of breathing room on an interactive
		// terminal, but not when stderr is piped somewhere a human isn't
		// watching it scroll by.
		if isatty.IsTerminal(os.Stderr.Fd()) {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "regexeze",
		Short:         "Translate a keyword-oriented DSL into regular expression syntax",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTranslateCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newHistoryCmd())
	return root
}
