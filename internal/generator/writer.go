package generator

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/mfreites/markuptest/internal/domain"
)

// WriteFileIdempotent writes content to path only when it differs from what
// is already there, creating parent directories as needed. It returns
// whether the file was written. Skipping unchanged writes keeps
// source-control diffs and downstream file-watchers quiet.
func WriteFileIdempotent(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, domain.NewError("write", path, 0, "failed to create output directory", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, domain.NewError("write", path, 0, "failed to write output file", err)
	}
	return true, nil
}
