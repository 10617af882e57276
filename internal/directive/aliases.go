package directive

import (
	"strings"

	"github.com/mfreites/markuptest/internal/domain"
)

// The two alias tables are keyed by the directive name lower-cased with all
// hyphens and underscores stripped, so "not-visible", "not_visible" and
// "notvisible" resolve identically. They are maintained independently:
// step actions and expectation types drifted apart in the wild and sharing
// one table has caused accidental cross-bleed before.

var stepActionAliases = map[string]domain.StepAction{
	"click":         domain.ActionClick,
	"dblclick":      domain.ActionClick,
	"type":          domain.ActionType,
	"input":         domain.ActionType,
	"change":        domain.ActionChange,
	"set":           domain.ActionChange,
	"focus":         domain.ActionFocus,
	"blur":          domain.ActionBlur,
	"key":           domain.ActionKey,
	"press":         domain.ActionKey,
	"keypress":      domain.ActionKey,
	"select":        domain.ActionSelect,
	"choose":        domain.ActionSelect,
	"hover":         domain.ActionHover,
	"mouseover":     domain.ActionHover,
	"clear":         domain.ActionClear,
	"wait":          domain.ActionWaitFor,
	"waitfor":       domain.ActionWaitFor,
	"submit":        domain.ActionSubmit,
	"submitcontext": domain.ActionSubmit,
}

var expectTypeAliases = map[string]domain.ExpectType{
	"visible":      domain.ExpectVisible,
	"shown":        domain.ExpectVisible,
	"notvisible":   domain.ExpectNotVisible,
	"hidden":       domain.ExpectNotVisible,
	"exists":       domain.ExpectExists,
	"present":      domain.ExpectExists,
	"notexists":    domain.ExpectNotExists,
	"absent":       domain.ExpectNotExists,
	"text":         domain.ExpectText,
	"containstext": domain.ExpectText,
	"exacttext":    domain.ExpectExactText,
	"value":        domain.ExpectValue,
	"hasclass":     domain.ExpectHasClass,
	"class":        domain.ExpectHasClass,
	"nothasclass":  domain.ExpectNotHasClass,
	"aria":         domain.ExpectAria,
	"urlcontains":  domain.ExpectURLContains,
	"url":          domain.ExpectURLContains,
	"urlexact":     domain.ExpectURLExact,
	"snapshot":     domain.ExpectSnapshot,
	"screenshot":   domain.ExpectSnapshot,
}

// normalizeName lower-cases a directive name and strips separator characters
// before alias lookup.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// resolveAction maps a raw action name onto the StepAction enumeration.
// Unknown names resolve to ActionCustom; the second return is false so the
// caller can keep the raw text for diagnostics.
func resolveAction(name string) (domain.StepAction, bool) {
	if a, ok := stepActionAliases[normalizeName(name)]; ok {
		return a, true
	}
	return domain.ActionCustom, false
}

// resolveExpectType maps a raw expectation type name onto the ExpectType
// enumeration.
func resolveExpectType(name string) (domain.ExpectType, bool) {
	if t, ok := expectTypeAliases[normalizeName(name)]; ok {
		return t, true
	}
	return domain.ExpectCustom, false
}
