package utils

import (
	"testing"
)

func TestPatternLabel(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"simple.rgz", "simple"},
		{"path/to/pattern.rgz", "pattern"},
		{"pattern.regexeze", "pattern"},
		{"/absolute/path/to/mod.rgz", "mod"},
		{"name.with.dots.rgz", "name.with.dots"},
		{"no_extension", "no_extension"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := PatternLabel(tt.path)
			if got != tt.expected {
				t.Errorf("PatternLabel(%q) = %q; want %q", tt.path, got, tt.expected)
			}
		})
	}
}
