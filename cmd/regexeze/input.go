package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/funvibe/regexeze/internal/utils"
)

// readSource resolves the mutually exclusive --pattern/--filename flags
// (falling back to stdin when neither is given) into the Regexeze source
// text, along with a human-readable description of where it came from for
// history logging.
func readSource(pattern, filename string) (source, describedFrom string, err error) {
	switch {
	case pattern != "" && filename != "":
		return "", "", fmt.Errorf("--pattern and --filename are mutually exclusive")
	case pattern != "":
		return pattern, "pattern argument", nil
	case filename != "":
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", filename, err)
		}
		desc := fmt.Sprintf("%s (%s)", utils.PatternLabel(filename), humanize.Bytes(uint64(len(data))))
		return string(data), desc, nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
}
