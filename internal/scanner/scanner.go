// Package scanner walks markup and source files, locates test directives,
// and builds per-file IR fragments. Scanning is read-only: it never mutates
// the files it visits.
package scanner

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mfreites/markuptest/internal/domain"
)

// SourceScanner extracts IR fragments from one kind of source file.
type SourceScanner interface {
	Scan(filePath string, content []byte) ([]domain.Suite, error)
	SupportedExtensions() []string
}

// Registry maps file extensions to source scanners.
type Registry interface {
	Register(s SourceScanner)
	ScannerFor(extension string) (SourceScanner, error)
}

// DefaultRegistry is a thread-safe scanner registry with fallback support.
type DefaultRegistry struct {
	mu       sync.RWMutex
	scanners map[string]SourceScanner
	fallback SourceScanner
}

// NewRegistry creates a new DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		scanners: make(map[string]SourceScanner),
	}
}

// Register adds a scanner for each of its supported extensions.
func (r *DefaultRegistry) Register(s SourceScanner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range s.SupportedExtensions() {
		ext = strings.TrimPrefix(ext, ".")
		r.scanners[ext] = s
	}
}

// SetFallback sets the scanner used for unregistered extensions.
func (r *DefaultRegistry) SetFallback(s SourceScanner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = s
}

// ScannerFor returns the scanner registered for the given file extension,
// or the fallback if none is registered.
func (r *DefaultRegistry) ScannerFor(extension string) (SourceScanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext := strings.TrimPrefix(extension, ".")
	if s, ok := r.scanners[ext]; ok {
		return s, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("no scanner registered for extension %q", extension)
}

// ScanFile reads a file and scans it with the scanner registered for its
// extension.
func ScanFile(reg Registry, filePath string) ([]domain.Suite, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, domain.NewError("scan", filePath, 0, "failed to read file", err)
	}
	ext := ""
	if idx := strings.LastIndex(filePath, "."); idx >= 0 {
		ext = filePath[idx:]
	}
	s, err := reg.ScannerFor(ext)
	if err != nil {
		return nil, domain.NewError("scan", filePath, 0, "no scanner for file", err)
	}
	return s.Scan(filePath, content)
}

// NewDefaultRegistry wires the built-in scanners: HTML for markup files,
// Markdown for docs, and the comment-macro scanner as fallback for
// everything script-shaped.
func NewDefaultRegistry() *DefaultRegistry {
	reg := NewRegistry()
	reg.Register(NewHTMLScanner())
	reg.Register(NewMarkdownScanner())
	macro := NewMacroScanner()
	reg.Register(macro)
	reg.SetFallback(macro)
	return reg
}
