package validator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mfreites/markuptest/internal/domain"
	"github.com/mfreites/markuptest/internal/validator"
)

func testIR(suites ...domain.Suite) *domain.TestIR {
	return &domain.TestIR{Version: domain.IRVersion, Suites: suites}
}

func validCase() domain.Case {
	sel := &domain.Selector{Type: domain.SelectorTestID, Value: "email"}
	return domain.Case{
		ID:       "login__default",
		Context:  "login",
		Scenario: "default",
		Type:     domain.CaseUI,
		Steps: []domain.Step{
			{ID: "step-1", Action: domain.ActionType, Selector: sel, Value: "x"},
		},
		Expectations: []domain.Expectation{
			{ID: "exp-1", Type: domain.ExpectVisible, Selector: sel},
		},
	}
}

var _ = Describe("ValidateIR", func() {
	It("should pass a well-formed document", func() {
		ir := testIR(domain.Suite{ID: "login", Context: "login", Cases: []domain.Case{validCase()}})
		report := validator.ValidateIR(ir)
		Expect(report.Valid).To(BeTrue())
		Expect(report.ErrorCount).To(BeZero())
		Expect(report.WarningCount).To(BeZero())
		Expect(report.Issues).To(BeEmpty())
	})

	It("should report an error for a step without a selector", func() {
		c := validCase()
		c.Steps[0].Selector = nil
		ir := testIR(domain.Suite{ID: "login", Context: "login", Cases: []domain.Case{c}})
		report := validator.ValidateIR(ir)
		Expect(report.Valid).To(BeFalse())
		Expect(report.ErrorCount).To(Equal(1))
		Expect(report.Issues[0].RuleID).To(Equal(validator.RuleStepMissingSelector))
	})

	It("should warn for a value-requiring step without a value", func() {
		c := validCase()
		c.Steps[0].Value = ""
		ir := testIR(domain.Suite{ID: "login", Context: "login", Cases: []domain.Case{c}})
		report := validator.ValidateIR(ir)
		Expect(report.Valid).To(BeTrue())
		Expect(report.ErrorCount).To(BeZero())
		Expect(report.WarningCount).To(Equal(1))
		Expect(report.Issues[0].Message).To(ContainSubstring("missing a value"))
		Expect(report.Issues[0].RuleID).To(Equal(validator.RuleMissingValue))
	})

	It("should not require a value for actions outside the value set", func() {
		c := validCase()
		c.Steps[0].Action = domain.ActionClick
		c.Steps[0].Value = ""
		report := validator.ValidateIR(testIR(domain.Suite{ID: "l", Context: "l", Cases: []domain.Case{c}}))
		Expect(report.WarningCount).To(BeZero())
	})

	It("should warn for unknown actions and types, never error", func() {
		c := validCase()
		c.Steps[0].Action = "teleport"
		c.Expectations[0].Type = "smells-nice"
		report := validator.ValidateIR(testIR(domain.Suite{ID: "l", Context: "l", Cases: []domain.Case{c}}))
		Expect(report.Valid).To(BeTrue())
		Expect(report.WarningCount).To(BeNumerically(">=", 2))
	})

	It("should warn for selector-requiring expectations without one", func() {
		c := validCase()
		c.Expectations[0].Selector = nil
		report := validator.ValidateIR(testIR(domain.Suite{ID: "l", Context: "l", Cases: []domain.Case{c}}))
		Expect(report.Valid).To(BeTrue())
		Expect(report.WarningCount).To(Equal(1))
		Expect(report.Issues[0].RuleID).To(Equal(validator.RuleExpectMissingSelector))
	})

	It("should not require a selector for url assertions", func() {
		c := validCase()
		c.Expectations[0] = domain.Expectation{ID: "exp-1", Type: domain.ExpectURLContains, Value: "/x"}
		report := validator.ValidateIR(testIR(domain.Suite{ID: "l", Context: "l", Cases: []domain.Case{c}}))
		Expect(report.Issues).To(BeEmpty())
	})

	It("should error for missing identifiers", func() {
		c := validCase()
		c.ID = ""
		c.Steps[0].ID = ""
		c.Expectations[0].ID = ""
		ir := testIR(domain.Suite{ID: "", Context: "login", Cases: []domain.Case{c}})
		report := validator.ValidateIR(ir)
		Expect(report.Valid).To(BeFalse())
		Expect(report.ErrorCount).To(Equal(4))
	})

	It("should downgrade document-level findings to warning and info", func() {
		report := validator.ValidateIR(&domain.TestIR{Version: 2})
		Expect(report.Valid).To(BeTrue())
		Expect(report.WarningCount).To(Equal(1)) // version
		Expect(report.InfoCount).To(Equal(1))    // no suites

		report = validator.ValidateIR(testIR(domain.Suite{ID: "empty", Context: "empty"}))
		Expect(report.WarningCount).To(Equal(1)) // empty suite
	})

	It("should mark a case with nothing in it as info", func() {
		c := domain.Case{ID: "a__default", Context: "a", Scenario: "default"}
		report := validator.ValidateIR(testIR(domain.Suite{ID: "a", Context: "a", Cases: []domain.Case{c}}))
		Expect(report.InfoCount).To(Equal(1))
		Expect(report.Issues[0].RuleID).To(Equal(validator.RuleEmptyCase))
	})

	It("should sort issues by file, then line", func() {
		mkCase := func(id, file string, line int) domain.Case {
			c := validCase()
			c.ID = id
			c.Steps[0].Selector = nil
			c.Steps[0].Source = domain.LocationRef{FilePath: file, Line: line}
			return c
		}
		ir := testIR(
			domain.Suite{ID: "s1", Context: "s1", Cases: []domain.Case{
				mkCase("s1__b", "b.html", 10),
				mkCase("s1__a", "a.html", 99),
			}},
			domain.Suite{ID: "s2", Context: "s2", Cases: []domain.Case{
				mkCase("s2__a", "a.html", 3),
			}},
		)
		report := validator.ValidateIR(ir)
		errs := make([]validator.Issue, 0)
		for _, issue := range report.Issues {
			if issue.Severity == validator.SeverityError {
				errs = append(errs, issue)
			}
		}
		Expect(errs).To(HaveLen(3))
		Expect(errs[0].FilePath).To(Equal("a.html"))
		Expect(errs[0].Line).To(Equal(3))
		Expect(errs[1].FilePath).To(Equal("a.html"))
		Expect(errs[1].Line).To(Equal(99))
		Expect(errs[2].FilePath).To(Equal("b.html"))
	})
})

var _ = Describe("CaseHasErrors", func() {
	It("should gate only the offending case", func() {
		bad := validCase()
		bad.ID = "login__bad"
		bad.Steps[0].Selector = nil
		good := validCase()

		ir := testIR(domain.Suite{ID: "login", Context: "login", Cases: []domain.Case{bad, good}})
		report := validator.ValidateIR(ir)
		Expect(report.ErrorCount).To(Equal(1))
		Expect(validator.CaseHasErrors(report, &bad)).To(BeTrue())
		Expect(validator.CaseHasErrors(report, &good)).To(BeFalse())
	})
})
