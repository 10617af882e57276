// Package validator inspects a built IR document for structural defects
// before generation. Validation is a pure function: its only output is the
// returned report, and no finding short of an error ever blocks a run.
package validator

import (
	"fmt"
	"sort"

	"github.com/mfreites/markuptest/internal/domain"
)

// Severity classifies a finding. Errors gate generation for the affected
// case; warnings and infos never do.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rule identifiers, stable across releases so callers can filter on them.
const (
	RuleIRVersion             = "ir-version"
	RuleNoSuites              = "no-suites"
	RuleSuiteMissingID        = "suite-missing-id"
	RuleEmptySuite            = "empty-suite"
	RuleCaseMissingID         = "case-missing-id"
	RuleEmptyCase             = "empty-case"
	RuleStepMissingID         = "step-missing-id"
	RuleStepMissingSelector   = "step-missing-selector"
	RuleUnknownAction         = "unknown-action"
	RuleMissingValue          = "missing-value"
	RuleExpectMissingID       = "expect-missing-id"
	RuleExpectMissingSelector = "expect-missing-selector"
	RuleUnknownExpectType     = "unknown-expect-type"
)

// Issue is one finding, located as precisely as the IR allows. CaseID is
// set on case-scoped findings so generation can gate individual cases.
type Issue struct {
	Severity Severity `json:"severity"`
	FilePath string   `json:"filePath,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
	Message  string   `json:"message"`
	RuleID   string   `json:"ruleId"`
	CaseID   string   `json:"caseId,omitempty"`
}

// Report is the result of validating one IR document.
type Report struct {
	Valid        bool    `json:"valid"`
	Issues       []Issue `json:"issues"`
	ErrorCount   int     `json:"errorCount"`
	WarningCount int     `json:"warningCount"`
	InfoCount    int     `json:"infoCount"`
}

// ValidateIR checks the document against every rule and returns the sorted
// report. Validity tracks errors only: warnings never flip it. A caller
// that wants warnings to be fatal applies that policy itself.
func ValidateIR(ir *domain.TestIR) Report {
	v := &run{}

	if ir.Version != domain.IRVersion {
		v.add(Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("IR version %d differs from supported version %d", ir.Version, domain.IRVersion),
			RuleID:   RuleIRVersion,
		})
	}
	if len(ir.Suites) == 0 {
		v.add(Issue{
			Severity: SeverityInfo,
			Message:  "IR document contains no suites",
			RuleID:   RuleNoSuites,
		})
	}
	for i := range ir.Suites {
		v.checkSuite(&ir.Suites[i])
	}

	sort.SliceStable(v.issues, func(a, b int) bool {
		if v.issues[a].FilePath != v.issues[b].FilePath {
			return v.issues[a].FilePath < v.issues[b].FilePath
		}
		return v.issues[a].Line < v.issues[b].Line
	})

	return Report{
		Valid:        v.errors == 0,
		Issues:       v.issues,
		ErrorCount:   v.errors,
		WarningCount: v.warnings,
		InfoCount:    v.infos,
	}
}

type run struct {
	issues   []Issue
	errors   int
	warnings int
	infos    int
}

func (v *run) add(issue Issue) {
	switch issue.Severity {
	case SeverityError:
		v.errors++
	case SeverityWarning:
		v.warnings++
	default:
		v.infos++
	}
	v.issues = append(v.issues, issue)
}

func (v *run) checkSuite(s *domain.Suite) {
	file := ""
	if len(s.SourceFiles) > 0 {
		file = s.SourceFiles[0].FilePath
	}
	if s.ID == "" {
		v.add(Issue{
			Severity: SeverityError,
			FilePath: file,
			Message:  fmt.Sprintf("suite %q is missing its identifier", s.Context),
			RuleID:   RuleSuiteMissingID,
		})
	}
	if len(s.Cases) == 0 {
		v.add(Issue{
			Severity: SeverityWarning,
			FilePath: file,
			Message:  fmt.Sprintf("suite %q has no cases", s.Context),
			RuleID:   RuleEmptySuite,
		})
	}
	for i := range s.Cases {
		v.checkCase(&s.Cases[i], file)
	}
}

func (v *run) checkCase(c *domain.Case, suiteFile string) {
	file, line, col := suiteFile, 0, 0
	if len(c.DefinedAt) > 0 {
		file, line, col = c.DefinedAt[0].FilePath, c.DefinedAt[0].Line, c.DefinedAt[0].Column
	}
	at := func(loc domain.LocationRef) (string, int, int) {
		if loc.FilePath != "" {
			return loc.FilePath, loc.Line, loc.Column
		}
		return file, line, col
	}
	add := func(issue Issue) {
		issue.CaseID = c.ID
		v.add(issue)
	}

	if c.ID == "" {
		add(Issue{
			Severity: SeverityError,
			FilePath: file, Line: line, Column: col,
			Message: fmt.Sprintf("case %q/%q is missing its identifier", c.Context, c.Scenario),
			RuleID:  RuleCaseMissingID,
		})
	}
	if len(c.Steps) == 0 && len(c.Expectations) == 0 {
		add(Issue{
			Severity: SeverityInfo,
			FilePath: file, Line: line, Column: col,
			Message: fmt.Sprintf("case %q has neither steps nor expectations", c.ID),
			RuleID:  RuleEmptyCase,
		})
	}

	for i := range c.Steps {
		step := &c.Steps[i]
		f, l, cl := at(step.Source)
		if step.ID == "" {
			add(Issue{
				Severity: SeverityError,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("step %d of case %q is missing its identifier", i+1, c.ID),
				RuleID:  RuleStepMissingID,
			})
		}
		if step.Selector == nil {
			add(Issue{
				Severity: SeverityError,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("step %q of case %q has no selector", step.ID, c.ID),
				RuleID:  RuleStepMissingSelector,
			})
		}
		if !step.Action.IsKnown() {
			raw := string(step.Action)
			if step.Action == domain.ActionCustom && step.Value != "" {
				raw = step.Value
			}
			add(Issue{
				Severity: SeverityWarning,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("step %q uses unsupported action %q, treated as custom", step.ID, raw),
				RuleID:  RuleUnknownAction,
			})
		}
		if step.Action.NeedsValue() && step.Value == "" {
			add(Issue{
				Severity: SeverityWarning,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("step %q (%s) is missing a value", step.ID, step.Action),
				RuleID:  RuleMissingValue,
			})
		}
	}

	for i := range c.Expectations {
		exp := &c.Expectations[i]
		f, l, cl := at(exp.Source)
		if exp.ID == "" {
			add(Issue{
				Severity: SeverityError,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("expectation %d of case %q is missing its identifier", i+1, c.ID),
				RuleID:  RuleExpectMissingID,
			})
		}
		if !exp.Type.IsKnown() {
			add(Issue{
				Severity: SeverityWarning,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("expectation %q uses unsupported type %q, treated as custom", exp.ID, exp.Type),
				RuleID:  RuleUnknownExpectType,
			})
		}
		if exp.Type.NeedsSelector() && exp.Selector == nil {
			add(Issue{
				Severity: SeverityWarning,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("expectation %q (%s) has no selector", exp.ID, exp.Type),
				RuleID:  RuleExpectMissingSelector,
			})
		}
		if exp.Type.NeedsValue() && exp.Value == "" {
			add(Issue{
				Severity: SeverityWarning,
				FilePath: f, Line: l, Column: cl,
				Message: fmt.Sprintf("expectation %q (%s) is missing a value", exp.ID, exp.Type),
				RuleID:  RuleMissingValue,
			})
		}
	}
}

// CaseHasErrors reports whether any error-severity issue in the report
// belongs to the given case. Generation uses this to gate individual cases
// without holding back the rest of the document.
func CaseHasErrors(report Report, c *domain.Case) bool {
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError && issue.CaseID == c.ID {
			return true
		}
	}
	return false
}
