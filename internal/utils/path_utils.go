// Package utils holds small string-manipulation helpers shared by the CLI.
package utils

import (
	"path/filepath"
	"strings"

	"github.com/funvibe/regexeze/internal/config"
)

// PatternLabel derives a short human-readable label from a source file path,
// stripping its directory and any recognized source extension. Used when
// describing a --filename invocation in history output.
func PatternLabel(path string) string {
	name := filepath.Base(path)
	for _, ext := range config.SourceFileExtensions {
		if trimmed := strings.TrimSuffix(name, ext); trimmed != name {
			return trimmed
		}
	}
	return name
}
