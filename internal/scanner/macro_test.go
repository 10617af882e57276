package scanner_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mfreites/markuptest/internal/domain"
	"github.com/mfreites/markuptest/internal/scanner"
)

var _ = Describe("MacroScanner", func() {
	var s *scanner.MacroScanner

	BeforeEach(func() {
		s = scanner.NewMacroScanner()
	})

	Describe("profile.ts fixture", func() {
		var suites []domain.Suite

		BeforeEach(func() {
			var err error
			suites, err = s.Scan("profile.ts", readFixture("scripts", "profile.ts"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should build one suite with both macro blocks", func() {
			Expect(suites).To(HaveLen(1))
			Expect(suites[0].Context).To(Equal("profile"))
			Expect(suites[0].Cases).To(HaveLen(2))
			Expect(suites[0].Cases[0].ID).To(Equal("profile__rename"))
			Expect(suites[0].Cases[1].ID).To(Equal("profile__delete-account"))
		})

		It("should read block-comment macros with bracket selectors", func() {
			c := suites[0].Cases[0]
			Expect(c.Route).To(Equal("/settings/profile"))
			Expect(c.Type).To(Equal(domain.CaseE2E))
			Expect(c.Steps).To(HaveLen(3))
			Expect(c.Steps[0].Action).To(Equal(domain.ActionClear))
			Expect(c.Steps[0].Selector.Value).To(Equal("display-name"))
			Expect(c.Steps[1].Value).To(Equal("Ada Lovelace"))
			Expect(c.Expectations).To(HaveLen(2))
			Expect(c.Expectations[1].Value).To(Equal("Profile updated"))
		})

		It("should read line-comment macros and explicit test types", func() {
			c := suites[0].Cases[1]
			Expect(c.Type).To(Equal(domain.CaseE2E))
			Expect(c.Route).To(BeEmpty())
			Expect(c.Steps).To(HaveLen(3))
			Expect(c.Steps[0].Selector.Type).To(Equal(domain.SelectorCSS))
			Expect(c.Steps[0].Selector.Value).To(Equal(".danger-zone button"))
			Expect(c.Expectations).To(HaveLen(1))
			Expect(c.Expectations[0].Type).To(Equal(domain.ExpectURLContains))
			Expect(c.Expectations[0].Selector).To(BeNil())
		})

		It("should ignore directive-looking text inside string literals", func() {
			for _, suite := range suites {
				Expect(suite.Context).ToNot(ContainSubstring("not-a-real-context"))
			}
		})

		It("should mark macro directives as pattern-sourced", func() {
			c := suites[0].Cases[0]
			Expect(c.DefinedAt[0].Via).To(Equal(domain.ViaPattern))
			Expect(c.Steps[0].Source.Via).To(Equal(domain.ViaPattern))
		})
	})

	It("should drop macro steps without a bracket selector", func() {
		src := []byte(`
// @test-context cart
// @steps click; [add-to-cart] click
`)
		suites, err := s.Scan("cart.js", src)
		Expect(err).ToNot(HaveOccurred())
		c := suites[0].Cases[0]
		Expect(c.Steps).To(HaveLen(1))
		Expect(c.Steps[0].Selector.Value).To(Equal("add-to-cart"))
	})

	It("should keep a context block with no directives as an empty case", func() {
		src := []byte("// @test-context placeholder\n")
		suites, err := s.Scan("todo.js", src)
		Expect(err).ToNot(HaveOccurred())
		Expect(suites).To(HaveLen(1))
		Expect(suites[0].Cases[0].Steps).To(BeEmpty())
		Expect(suites[0].Cases[0].Expectations).To(BeEmpty())
	})
})

var _ = Describe("MarkdownScanner", func() {
	It("should scan HTML fenced code blocks in docs", func() {
		s := scanner.NewMarkdownScanner()
		suites, err := s.Scan("signup.md", readFixture("docs", "signup.md"))
		Expect(err).ToNot(HaveOccurred())
		Expect(suites).To(HaveLen(1))
		Expect(suites[0].Context).To(Equal("signup"))

		c := suites[0].Cases[0]
		Expect(c.ID).To(Equal("signup__happy-path"))
		Expect(c.Route).To(Equal("/signup"))
		Expect(c.Steps).To(HaveLen(2))
		Expect(c.Expectations).To(HaveLen(1))
	})

	It("should offset line numbers to the enclosing document", func() {
		s := scanner.NewMarkdownScanner()
		suites, err := s.Scan("signup.md", readFixture("docs", "signup.md"))
		Expect(err).ToNot(HaveOccurred())
		// The fenced block starts past the prose, so locations must not
		// restart at line 1.
		Expect(suites[0].Cases[0].DefinedAt[0].Line).To(BeNumerically(">", 5))
	})
})

var _ = Describe("Registry", func() {
	It("should route extensions to their scanners and fall back otherwise", func() {
		reg := scanner.NewDefaultRegistry()

		s, err := reg.ScannerFor(".html")
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&scanner.HTMLScanner{}))

		s, err = reg.ScannerFor(".md")
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&scanner.MarkdownScanner{}))

		s, err = reg.ScannerFor(".weird")
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&scanner.MacroScanner{}))
	})

	It("should error when no scanner matches and no fallback is set", func() {
		reg := scanner.NewRegistry()
		_, err := reg.ScannerFor(".html")
		Expect(err).To(HaveOccurred())
	})
})
