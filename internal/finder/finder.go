// Package finder discovers source files for scanning.
package finder

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
)

// Finder discovers candidate source files in the project tree.
type Finder interface {
	Find(rootDir string, includes []string, excludes []string) ([]string, error)
}

// FileFinder implements Finder using filepath.WalkDir.
type FileFinder struct {
	Recursive bool
}

// NewFinder creates a new FileFinder.
func NewFinder(recursive bool) *FileFinder {
	return &FileFinder{Recursive: recursive}
}

// Find walks rootDir and returns sorted file paths matching any include
// glob while not matching any exclude glob. Sorting makes downstream merge
// order, and therefore first-seen-wins case resolution, deterministic.
func (f *FileFinder) Find(rootDir string, includes []string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			relPath = path
		}

		if d.IsDir() {
			if !f.Recursive && relPath != "." {
				return filepath.SkipDir
			}
			for _, exc := range excludes {
				if matchGlob(relPath, exc) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		for _, exc := range excludes {
			if matchGlob(relPath, exc) {
				return nil
			}
		}
		for _, inc := range includes {
			if matchGlob(relPath, inc) {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewError("scan", rootDir, 0, "failed to walk source tree", err)
	}

	sort.Strings(files)
	return files, nil
}

// matchGlob matches a relative path against a glob pattern, supporting **
// for recursive matching.
func matchGlob(path, pattern string) bool {
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], string(filepath.Separator))
		suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

		if prefix != "" {
			if !strings.HasPrefix(path, prefix) {
				return false
			}
			path = strings.TrimPrefix(path, prefix)
			path = strings.TrimPrefix(path, string(filepath.Separator))
		}
		if suffix == "" {
			return true
		}
		segments := strings.Split(path, string(filepath.Separator))
		for i := range segments {
			sub := strings.Join(segments[i:], string(filepath.Separator))
			if ok, _ := filepath.Match(suffix, sub); ok {
				return true
			}
		}
		return false
	}

	if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
		return true
	}
	ok, _ := filepath.Match(pattern, path)
	return ok
}
