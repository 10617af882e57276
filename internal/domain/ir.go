package domain

import (
	"encoding/json"
	"os"
	"time"
)

// NewTestIR creates an empty IR document stamped with the current time.
// GeneratedAt is informational only; generators never read it.
func NewTestIR(sourceRoot string) *TestIR {
	return &TestIR{
		Version:     IRVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		SourceRoot:  sourceRoot,
		Suites:      []Suite{},
	}
}

// SaveIR writes the IR document as indented JSON. The on-disk file is a
// regenerable cache, so an interrupted write loses nothing.
func SaveIR(ir *TestIR, path string) error {
	data, err := json.MarshalIndent(ir, "", "  ")
	if err != nil {
		return NewError("write", path, 0, "failed to marshal IR", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewError("write", path, 0, "failed to write IR file", err)
	}
	return nil
}

// LoadIR reads a persisted IR document. Version mismatches are not rejected
// here; the validator reports them as a warning.
func LoadIR(path string) (*TestIR, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError("parse", path, 0, "failed to read IR file", err)
	}
	var ir TestIR
	if err := json.Unmarshal(data, &ir); err != nil {
		return nil, NewError("parse", path, 0, "failed to parse IR file", err)
	}
	return &ir, nil
}
