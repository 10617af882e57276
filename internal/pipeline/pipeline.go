// Package pipeline wires the scan → merge → validate → generate stages.
// Each run is a complete, stateless recomputation from the current file
// set; there is no incremental rebuild.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mfreites/markuptest/internal/config"
	"github.com/mfreites/markuptest/internal/domain"
	"github.com/mfreites/markuptest/internal/finder"
	"github.com/mfreites/markuptest/internal/generator"
	"github.com/mfreites/markuptest/internal/merger"
	"github.com/mfreites/markuptest/internal/scanner"
	"github.com/mfreites/markuptest/internal/validator"
)

// Pipeline runs the full extraction and generation flow. It holds no
// mutable state between runs; every dependency is passed in explicitly.
type Pipeline struct {
	finder   finder.Finder
	registry scanner.Registry
	log      *logrus.Logger
}

// New creates a Pipeline with all dependencies.
func New(f finder.Finder, reg scanner.Registry, log *logrus.Logger) *Pipeline {
	return &Pipeline{finder: f, registry: reg, log: log}
}

// Result summarizes one pipeline run.
type Result struct {
	IR           *domain.TestIR
	Report       validator.Report
	FilesScanned int
	FilesFailed  int
	Written      int
	Unchanged    int
	Blocked      int
}

// Scan discovers source files, scans each and merges the fragments into one
// IR document. A file that fails to scan contributes nothing and is
// reported per-file; it never aborts the batch.
func (p *Pipeline) Scan(cfg *config.Config) (*domain.TestIR, int, int, error) {
	files, err := p.finder.Find(cfg.Input.Root, cfg.Input.Include, cfg.Input.Exclude)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to discover source files: %w", err)
	}
	p.log.Infof("Found %d source file(s) under %s", len(files), cfg.Input.Root)

	scanned, failed := 0, 0
	fragments := make([][]domain.Suite, 0, len(files))
	for _, file := range files {
		suites, err := scanner.ScanFile(p.registry, file)
		if err != nil {
			p.log.Warnf("Failed to scan %s: %v", file, err)
			failed++
			continue
		}
		scanned++
		if len(suites) > 0 {
			p.log.Debugf("Found %d suite fragment(s) in %s", len(suites), file)
			fragments = append(fragments, suites)
		}
	}

	ir := merger.MergeSuites(fragments, cfg.Input.Root)
	return ir, scanned, failed, nil
}

// Run executes the whole pipeline. Validator errors gate generation per
// case: a case with at least one error emits nothing, every other case is
// generated unaffected. In strict mode warnings make the run fail after
// the report is assembled, but never change what the validator itself
// reports.
func (p *Pipeline) Run(cfg *config.Config) (*Result, error) {
	ir, scanned, failed, err := p.Scan(cfg)
	if err != nil {
		return nil, err
	}
	res := &Result{IR: ir, FilesScanned: scanned, FilesFailed: failed}

	if cfg.IR.CachePath != "" && !cfg.DryRun {
		if err := domain.SaveIR(ir, cfg.IR.CachePath); err != nil {
			p.log.Warnf("Failed to write IR cache: %v", err)
		}
	}

	res.Report = validator.ValidateIR(ir)
	for _, issue := range res.Report.Issues {
		switch issue.Severity {
		case validator.SeverityError:
			p.log.Errorf("%s:%d: %s [%s]", issue.FilePath, issue.Line, issue.Message, issue.RuleID)
		case validator.SeverityWarning:
			p.log.Warnf("%s:%d: %s [%s]", issue.FilePath, issue.Line, issue.Message, issue.RuleID)
		default:
			p.log.Debugf("%s:%d: %s [%s]", issue.FilePath, issue.Line, issue.Message, issue.RuleID)
		}
	}

	if err := p.generate(cfg, res); err != nil {
		return res, err
	}

	if cfg.Validation.Strict && res.Report.WarningCount > 0 {
		return res, fmt.Errorf("strict mode: %d warning(s) treated as fatal", res.Report.WarningCount)
	}
	p.log.Infof("Generation complete: %d written, %d unchanged, %d blocked by errors",
		res.Written, res.Unchanged, res.Blocked)
	return res, nil
}

func (p *Pipeline) generate(cfg *config.Config, res *Result) error {
	for _, gc := range cfg.Generators {
		gen, err := generator.ByName(gc.Name)
		if err != nil {
			return fmt.Errorf("failed to resolve generator: %w", err)
		}
		for _, suite := range res.IR.Suites {
			for _, c := range suite.Cases {
				if validator.CaseHasErrors(res.Report, &c) {
					p.log.Warnf("Skipping case %q for %s: validation errors", c.ID, gc.Name)
					res.Blocked++
					continue
				}
				text, err := gen.Generate(suite, c)
				if err != nil {
					return domain.NewError("generate", "", 0,
						fmt.Sprintf("generator %q failed on case %q", gc.Name, c.ID), err)
				}
				path := filepath.Join(gc.Output, gen.FileName(c))
				if cfg.DryRun {
					p.log.Infof("[DRY-RUN] Would write: %s", path)
					continue
				}
				wrote, err := generator.WriteFileIdempotent(path, []byte(text))
				if err != nil {
					return err
				}
				if wrote {
					p.log.Infof("Writing: %s", path)
					res.Written++
				} else {
					p.log.Debugf("Unchanged: %s", path)
					res.Unchanged++
				}
			}
		}
	}
	return nil
}
