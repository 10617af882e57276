// Package directive tokenizes the free-form strings carried by
// data-test-step / data-test-expect attributes and the @steps / @expect
// comment macros into structured steps and expectations.
//
// Two grammars share each attribute: a JSON array of objects, and a
// semicolon-separated token grammar. Disambiguation is a single attempt —
// try the JSON parse first, fall back to the token grammar on failure.
package directive

import (
	"encoding/json"
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
)

// jsonDirective is the shape accepted by the JSON-array alternate form.
// Step objects carry "action", expectation objects carry "assert".
type jsonDirective struct {
	Action   string           `json:"action"`
	Assert   string           `json:"assert"`
	Value    string           `json:"value"`
	DelayMs  int              `json:"delayMs"`
	Selector *domain.Selector `json:"selector"`
}

// ParseStepDirective tokenizes one step directive string. It is total: every
// non-empty segment yields exactly one Step, with unrecognized action names
// preserved as ActionCustom carrying the raw segment text as its value.
// Ids, selectors and source locations are filled in by the scanner.
func ParseStepDirective(raw string) []domain.Step {
	if items, ok := tryJSONArray(raw); ok {
		steps := make([]domain.Step, 0, len(items))
		for _, item := range items {
			action, known := resolveAction(item.Action)
			step := domain.Step{
				Action:   action,
				Value:    item.Value,
				DelayMs:  item.DelayMs,
				Selector: item.Selector,
			}
			if !known {
				step.Value = item.Action
			}
			steps = append(steps, step)
		}
		return steps
	}

	var steps []domain.Step
	for _, seg := range splitSegments(raw) {
		selector, body := extractSelectorPrefix(seg)
		name, value := splitNameValue(body)
		action, known := resolveAction(name)
		step := domain.Step{Action: action, Value: value, Selector: selector}
		if !known {
			// Keep the full raw segment so diagnostics can show what
			// the author actually wrote.
			step.Value = body
		}
		steps = append(steps, step)
	}
	return steps
}

// ParseExpectationDirective tokenizes one expectation directive string.
// Unknown expectation type names are dropped at this layer; genuinely
// malformed IR entities are the validator's job.
func ParseExpectationDirective(raw string) []domain.Expectation {
	if items, ok := tryJSONArray(raw); ok {
		var exps []domain.Expectation
		for _, item := range items {
			typ, known := resolveExpectType(item.Assert)
			if !known {
				continue
			}
			exps = append(exps, domain.Expectation{
				Type:     typ,
				Value:    item.Value,
				Selector: item.Selector,
			})
		}
		return exps
	}

	var exps []domain.Expectation
	for _, seg := range splitSegments(raw) {
		selector, body := extractSelectorPrefix(seg)
		name, value := splitNameValue(body)
		typ, known := resolveExpectType(name)
		if !known {
			continue
		}
		exps = append(exps, domain.Expectation{
			Type:     typ,
			Value:    value,
			Selector: selector,
		})
	}
	return exps
}

// tryJSONArray attempts the structured alternate form. Only a value that is
// a well-formed JSON array counts; anything else falls back to the token
// grammar.
func tryJSONArray(raw string) ([]jsonDirective, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}
	var items []jsonDirective
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, false
	}
	return items, true
}

// splitSegments splits on semicolons, trims each segment, and discards
// empty ones.
func splitSegments(raw string) []string {
	var segs []string
	for _, seg := range strings.Split(raw, ";") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// splitNameValue splits a segment at the first colon. Values may themselves
// contain colons ("type:a:b" has value "a:b"). A segment without a colon is
// a bare name.
func splitNameValue(seg string) (name, value string) {
	if idx := strings.Index(seg, ":"); idx >= 0 {
		return strings.TrimSpace(seg[:idx]), strings.TrimSpace(seg[idx+1:])
	}
	return strings.TrimSpace(seg), ""
}

// extractSelectorPrefix handles the bracketed selector form used by comment
// macros, where the directive has no host element to take a selector from:
//
//	[email] type:user@example.com
//	[css:.btn-primary] click
//	[role:button] click
//
// A bare bracketed token is a test id; "css:", "role:", "label:" and
// "placeholder:" prefixes pick the other selector types. Attribute-borne
// directives simply never start with "[" (a JSON array is caught earlier).
func extractSelectorPrefix(seg string) (*domain.Selector, string) {
	if !strings.HasPrefix(seg, "[") {
		return nil, seg
	}
	end := strings.Index(seg, "]")
	if end < 0 {
		return nil, seg
	}
	token := strings.TrimSpace(seg[1:end])
	rest := strings.TrimSpace(seg[end+1:])
	if token == "" {
		return nil, rest
	}

	sel := &domain.Selector{Type: domain.SelectorTestID, Value: token}
	if idx := strings.Index(token, ":"); idx > 0 {
		prefix := strings.ToLower(token[:idx])
		value := strings.TrimSpace(token[idx+1:])
		switch prefix {
		case "css":
			sel = &domain.Selector{Type: domain.SelectorCSS, Value: value}
		case "role":
			sel = &domain.Selector{Type: domain.SelectorRole, Value: value}
		case "label":
			sel = &domain.Selector{Type: domain.SelectorLabelText, Value: value}
		case "placeholder":
			sel = &domain.Selector{Type: domain.SelectorPlaceholder, Value: value}
		case "testid", "test-id":
			sel = &domain.Selector{Type: domain.SelectorTestID, Value: value}
		}
	}
	return sel, rest
}
