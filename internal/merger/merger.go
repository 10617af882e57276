// Package merger combines per-file IR fragments into one TestIR document.
package merger

import (
	"github.com/mfreites/markuptest/internal/domain"
)

// MergeSuites folds the fragments produced by scanning each file into a
// single IR document. Suites merge by context: source files union
// (deduplicated by path) and cases union. Cases collide by id, and the
// first-seen definition wins — a cross-file id collision is assumed to be
// an accidental naming clash, not a continuation, which is the opposite of
// the intra-file policy where repeated (context, scenario) blocks extend
// one another.
func MergeSuites(fragmentsPerFile [][]domain.Suite, sourceRoot string) *domain.TestIR {
	ir := domain.NewTestIR(sourceRoot)

	suiteIndex := make(map[string]int)
	for _, fragments := range fragmentsPerFile {
		for _, frag := range fragments {
			idx, ok := suiteIndex[frag.Context]
			if !ok {
				ir.Suites = append(ir.Suites, domain.Suite{
					ID:      frag.Context,
					Context: frag.Context,
				})
				idx = len(ir.Suites) - 1
				suiteIndex[frag.Context] = idx
			}
			mergeInto(&ir.Suites[idx], frag)
		}
	}
	return ir
}

func mergeInto(dst *domain.Suite, src domain.Suite) {
	seen := make(map[string]bool, len(dst.SourceFiles))
	for _, sf := range dst.SourceFiles {
		seen[sf.FilePath] = true
	}
	for _, sf := range src.SourceFiles {
		if !seen[sf.FilePath] {
			dst.SourceFiles = append(dst.SourceFiles, sf)
			seen[sf.FilePath] = true
		}
	}

	ids := make(map[string]bool, len(dst.Cases))
	for _, c := range dst.Cases {
		ids[c.ID] = true
	}
	for _, c := range src.Cases {
		if ids[c.ID] {
			continue // first-seen wins
		}
		dst.Cases = append(dst.Cases, c)
		ids[c.ID] = true
	}
}
