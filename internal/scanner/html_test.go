package scanner_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mfreites/markuptest/internal/domain"
	"github.com/mfreites/markuptest/internal/scanner"
)

func readFixture(parts ...string) []byte {
	path := filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
	content, err := os.ReadFile(path)
	Expect(err).ToNot(HaveOccurred())
	return content
}

var _ = Describe("HTMLScanner", func() {
	var s *scanner.HTMLScanner

	BeforeEach(func() {
		s = scanner.NewHTMLScanner()
	})

	Describe("a single context element", func() {
		const markup = `<div data-test-context="login" data-test-scenario="happy-path" data-test-route="/login"><input data-test-id="email" data-test-step="type:user@example.com"/><button data-test-id="submit" data-test-step="click"/><div data-test-id="success-message" data-test-expect="visible; text:Welcome"/></div>`

		It("should build one suite, one case, two steps and two expectations", func() {
			suites, err := s.Scan("login.html", []byte(markup))
			Expect(err).ToNot(HaveOccurred())
			Expect(suites).To(HaveLen(1))

			suite := suites[0]
			Expect(suite.ID).To(Equal("login"))
			Expect(suite.Cases).To(HaveLen(1))

			c := suite.Cases[0]
			Expect(c.ID).To(Equal("login__happy-path"))
			Expect(c.Type).To(Equal(domain.CaseE2E))
			Expect(c.Route).To(Equal("/login"))

			Expect(c.Steps).To(HaveLen(2))
			Expect(c.Steps[0].ID).To(Equal("step-1"))
			Expect(c.Steps[0].Action).To(Equal(domain.ActionType))
			Expect(c.Steps[0].Value).To(Equal("user@example.com"))
			Expect(c.Steps[0].Selector.Type).To(Equal(domain.SelectorTestID))
			Expect(c.Steps[0].Selector.Value).To(Equal("email"))
			Expect(c.Steps[1].ID).To(Equal("step-2"))
			Expect(c.Steps[1].Action).To(Equal(domain.ActionClick))

			Expect(c.Expectations).To(HaveLen(2))
			Expect(c.Expectations[0].ID).To(Equal("exp-1"))
			Expect(c.Expectations[0].Type).To(Equal(domain.ExpectVisible))
			Expect(c.Expectations[1].Type).To(Equal(domain.ExpectText))
			Expect(c.Expectations[1].Value).To(Equal("Welcome"))
			for _, exp := range c.Expectations {
				Expect(exp.Selector.Type).To(Equal(domain.SelectorTestID))
				Expect(exp.Selector.Value).To(Equal("success-message"))
			}
		})

		It("should record attribute provenance", func() {
			suites, err := s.Scan("login.html", []byte(markup))
			Expect(err).ToNot(HaveOccurred())
			c := suites[0].Cases[0]
			Expect(c.DefinedAt).To(HaveLen(1))
			Expect(c.DefinedAt[0].FilePath).To(Equal("login.html"))
			Expect(c.DefinedAt[0].Via).To(Equal(domain.ViaAttribute))
			Expect(c.Steps[0].Source.Raw).To(Equal("type:user@example.com"))
		})
	})

	Describe("login.html fixture", func() {
		It("should find two scenarios under one context", func() {
			suites, err := s.Scan("login.html", readFixture("markup", "login.html"))
			Expect(err).ToNot(HaveOccurred())
			Expect(suites).To(HaveLen(1))
			Expect(suites[0].Cases).To(HaveLen(2))
			Expect(suites[0].Cases[0].ID).To(Equal("login__happy-path"))
			Expect(suites[0].Cases[1].ID).To(Equal("login__bad-password"))
		})

		It("should keep a selector-less expectation for URL assertions", func() {
			suites, err := s.Scan("login.html", readFixture("markup", "login.html"))
			Expect(err).ToNot(HaveOccurred())
			exps := suites[0].Cases[0].Expectations
			last := exps[len(exps)-1]
			Expect(last.Type).To(Equal(domain.ExpectURLContains))
			Expect(last.Selector).To(BeNil())
		})

		It("should report line numbers from the source", func() {
			suites, err := s.Scan("login.html", readFixture("markup", "login.html"))
			Expect(err).ToNot(HaveOccurred())
			c := suites[0].Cases[0]
			Expect(c.DefinedAt[0].Line).To(Equal(4))
			Expect(c.Steps[0].Source.Line).To(BeNumerically(">", 4))
		})
	})

	Describe("checkout.html fixture", func() {
		var suites []domain.Suite

		BeforeEach(func() {
			var err error
			suites, err = s.Scan("checkout.html", readFixture("markup", "checkout.html"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should append repeated (context, scenario) fragments in order", func() {
			Expect(suites[0].Context).To(Equal("checkout"))
			Expect(suites[0].Cases).To(HaveLen(1))
			c := suites[0].Cases[0]
			Expect(c.ID).To(Equal("checkout__pay-by-card"))
			Expect(c.DefinedAt).To(HaveLen(2))
			Expect(c.Steps).To(HaveLen(5))
			Expect(c.Steps[0].Selector.Type).To(Equal(domain.SelectorRole))
			Expect(c.Steps[1].Selector.Type).To(Equal(domain.SelectorLabelText))
			Expect(c.Steps[2].Selector.Type).To(Equal(domain.SelectorPlaceholder))
			// Ids stay sequential across the appended fragment.
			Expect(c.Steps[4].ID).To(Equal("step-5"))
		})

		It("should honor the JSON directive form in attributes", func() {
			c := suites[0].Cases[0]
			Expect(c.Steps[3].Action).To(Equal(domain.ActionClick))
			Expect(c.Steps[4].Action).To(Equal(domain.ActionWaitFor))
			Expect(c.Steps[4].DelayMs).To(Equal(500))
			Expect(c.Steps[4].Selector.Value).To(Equal("pay-now"))
		})

		It("should default a context without scenario or route", func() {
			Expect(suites[1].Context).To(Equal("coupons"))
			c := suites[1].Cases[0]
			Expect(c.ID).To(Equal("coupons__default"))
			Expect(c.Scenario).To(Equal("default"))
			Expect(c.Type).To(Equal(domain.CaseUI))
		})

		It("should drop steps on elements without an identifier", func() {
			c := suites[1].Cases[0]
			Expect(c.Steps).To(HaveLen(2)) // coupon-code only
			Expect(c.Expectations).To(HaveLen(2))
			Expect(c.Expectations[1].Type).To(Equal(domain.ExpectAria))
			Expect(c.Expectations[1].Value).To(Equal("live=polite"))
		})
	})

	Describe("malformed markup", func() {
		It("should recover and keep the directives preceding the defect", func() {
			suites, err := s.Scan("truncated.html", readFixture("broken", "truncated.html"))
			Expect(err).ToNot(HaveOccurred())
			Expect(suites).To(HaveLen(1))
			Expect(suites[0].Context).To(Equal("broken-page"))
			c := suites[0].Cases[0]
			Expect(len(c.Steps)).To(BeNumerically(">=", 1))
			Expect(c.Steps[0].Action).To(Equal(domain.ActionClick))
		})
	})

	Describe("nested contexts", func() {
		It("should give each context its own case", func() {
			markup := `
<div data-test-context="outer">
  <button data-test-id="a" data-test-step="click"></button>
  <div data-test-context="inner">
    <button data-test-id="b" data-test-step="click"></button>
  </div>
</div>`
			suites, err := s.Scan("nested.html", []byte(markup))
			Expect(err).ToNot(HaveOccurred())
			Expect(suites).To(HaveLen(2))
			Expect(suites[0].Cases[0].Steps).To(HaveLen(1))
			Expect(suites[1].Cases[0].Steps).To(HaveLen(1))
			Expect(suites[1].Cases[0].Steps[0].Selector.Value).To(Equal("b"))
		})
	})
})
