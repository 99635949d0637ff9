package main

import (
	"os"
	"path/filepath"

	"github.com/funvibe/regexeze/internal/history"
)

// defaultHistoryPath returns the fixed location of the local history
// database under the user's cache directory.
func defaultHistoryPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "regexeze")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// openHistory opens the default history store, or returns a nil store
// (never an error) when disabled is true.
func openHistory(disabled bool) (*history.Store, error) {
	if disabled {
		return nil, nil
	}
	path, err := defaultHistoryPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}
