package directive_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mfreites/markuptest/internal/directive"
	"github.com/mfreites/markuptest/internal/domain"
)

var _ = Describe("ParseStepDirective", func() {
	It("should split on semicolons and discard empty segments", func() {
		steps := directive.ParseStepDirective("type:user@example.com; click; ; ")
		Expect(steps).To(HaveLen(2))
		Expect(steps[0].Action).To(Equal(domain.ActionType))
		Expect(steps[0].Value).To(Equal("user@example.com"))
		Expect(steps[1].Action).To(Equal(domain.ActionClick))
	})

	It("should split name and value at the first colon only", func() {
		steps := directive.ParseStepDirective("type:a:b:c")
		Expect(steps).To(HaveLen(1))
		Expect(steps[0].Value).To(Equal("a:b:c"))
	})

	It("should match names case-insensitively", func() {
		steps := directive.ParseStepDirective("CLICK; Type:x")
		Expect(steps[0].Action).To(Equal(domain.ActionClick))
		Expect(steps[1].Action).To(Equal(domain.ActionType))
	})

	It("should normalize separator variants of action names", func() {
		for _, raw := range []string{"waitfor", "wait-for", "wait_for"} {
			steps := directive.ParseStepDirective(raw)
			Expect(steps[0].Action).To(Equal(domain.ActionWaitFor), "for %q", raw)
		}
	})

	It("should preserve unknown actions as custom with the raw text", func() {
		steps := directive.ParseStepDirective("frobnicate:hard")
		Expect(steps).To(HaveLen(1))
		Expect(steps[0].Action).To(Equal(domain.ActionCustom))
		Expect(steps[0].Value).To(Equal("frobnicate:hard"))
	})

	It("should yield one step per non-empty segment, even for garbage", func() {
		steps := directive.ParseStepDirective("???;;; also garbage ; click")
		Expect(steps).To(HaveLen(3))
		Expect(steps[0].Action).To(Equal(domain.ActionCustom))
		Expect(steps[1].Action).To(Equal(domain.ActionCustom))
		Expect(steps[2].Action).To(Equal(domain.ActionClick))
	})

	It("should return nothing for an empty string", func() {
		Expect(directive.ParseStepDirective("")).To(BeEmpty())
		Expect(directive.ParseStepDirective("  ; ;")).To(BeEmpty())
	})

	Describe("JSON alternate form", func() {
		It("should accept a JSON array of action objects", func() {
			raw := `[{"action": "click"}, {"action": "type", "value": "hi", "delayMs": 250}]`
			steps := directive.ParseStepDirective(raw)
			Expect(steps).To(HaveLen(2))
			Expect(steps[0].Action).To(Equal(domain.ActionClick))
			Expect(steps[1].Action).To(Equal(domain.ActionType))
			Expect(steps[1].Value).To(Equal("hi"))
			Expect(steps[1].DelayMs).To(Equal(250))
		})

		It("should carry an inline selector", func() {
			raw := `[{"action": "click", "selector": {"type": "css", "value": ".btn"}}]`
			steps := directive.ParseStepDirective(raw)
			Expect(steps[0].Selector).ToNot(BeNil())
			Expect(steps[0].Selector.Type).To(Equal(domain.SelectorCSS))
			Expect(steps[0].Selector.Value).To(Equal(".btn"))
		})

		It("should fall back to the token grammar for malformed JSON", func() {
			steps := directive.ParseStepDirective("[not json")
			Expect(steps).To(HaveLen(1))
			Expect(steps[0].Action).To(Equal(domain.ActionCustom))
		})
	})

	Describe("bracketed selector prefix", func() {
		It("should take a bare token as a test id", func() {
			steps := directive.ParseStepDirective("[email] type:user@example.com")
			Expect(steps[0].Selector).ToNot(BeNil())
			Expect(steps[0].Selector.Type).To(Equal(domain.SelectorTestID))
			Expect(steps[0].Selector.Value).To(Equal("email"))
			Expect(steps[0].Action).To(Equal(domain.ActionType))
		})

		It("should understand css, role, label and placeholder prefixes", func() {
			steps := directive.ParseStepDirective(
				"[css:.danger] click; [role:button] click; [label:Email] focus; [placeholder:Search] clear")
			Expect(steps[0].Selector.Type).To(Equal(domain.SelectorCSS))
			Expect(steps[1].Selector.Type).To(Equal(domain.SelectorRole))
			Expect(steps[2].Selector.Type).To(Equal(domain.SelectorLabelText))
			Expect(steps[3].Selector.Type).To(Equal(domain.SelectorPlaceholder))
		})
	})
})

var _ = Describe("ParseExpectationDirective", func() {
	It("should parse types and values", func() {
		exps := directive.ParseExpectationDirective("visible; text:Welcome")
		Expect(exps).To(HaveLen(2))
		Expect(exps[0].Type).To(Equal(domain.ExpectVisible))
		Expect(exps[1].Type).To(Equal(domain.ExpectText))
		Expect(exps[1].Value).To(Equal("Welcome"))
	})

	It("should resolve separator variants through the alias table", func() {
		for _, raw := range []string{"notvisible", "not_visible", "not-visible"} {
			exps := directive.ParseExpectationDirective(raw)
			Expect(exps).To(HaveLen(1), "for %q", raw)
			Expect(exps[0].Type).To(Equal(domain.ExpectNotVisible), "for %q", raw)
		}
	})

	It("should drop unknown expectation types silently", func() {
		exps := directive.ParseExpectationDirective("sparkles; visible")
		Expect(exps).To(HaveLen(1))
		Expect(exps[0].Type).To(Equal(domain.ExpectVisible))
	})

	It("should accept the JSON array form with assert keys", func() {
		raw := `[{"assert": "visible"}, {"assert": "text", "value": "Hello"}]`
		exps := directive.ParseExpectationDirective(raw)
		Expect(exps).To(HaveLen(2))
		Expect(exps[1].Value).To(Equal("Hello"))
	})

	It("should keep url assertions selector-free", func() {
		exps := directive.ParseExpectationDirective("url-contains:/dashboard")
		Expect(exps).To(HaveLen(1))
		Expect(exps[0].Type).To(Equal(domain.ExpectURLContains))
		Expect(exps[0].Selector).To(BeNil())
	})
})
