package domain

// IRVersion is the TestIR schema version this build reads and writes.
const IRVersion = 1

// DefaultScenario is the scenario name used when markup declares none.
const DefaultScenario = "default"

// StepAction is a closed enumeration of user actions a Step can express.
// Unknown directive names are preserved as ActionCustom rather than rejected,
// so a malformed directive degrades to a placeholder instead of failing a run.
type StepAction string

const (
	ActionClick   StepAction = "click"
	ActionType    StepAction = "type"
	ActionChange  StepAction = "change"
	ActionFocus   StepAction = "focus"
	ActionBlur    StepAction = "blur"
	ActionKey     StepAction = "key"
	ActionSelect  StepAction = "select"
	ActionHover   StepAction = "hover"
	ActionClear   StepAction = "clear"
	ActionWaitFor StepAction = "waitFor"
	ActionSubmit  StepAction = "submitContext"
	ActionCustom  StepAction = "custom"
)

// KnownActions lists every supported StepAction except ActionCustom.
var KnownActions = []StepAction{
	ActionClick, ActionType, ActionChange, ActionFocus, ActionBlur,
	ActionKey, ActionSelect, ActionHover, ActionClear, ActionWaitFor,
	ActionSubmit,
}

// IsKnown reports whether the action is part of the supported enumeration.
// ActionCustom is not: it marks a directive the enumeration could not
// absorb, and the validator warns about every one of them.
func (a StepAction) IsKnown() bool {
	for _, k := range KnownActions {
		if a == k {
			return true
		}
	}
	return false
}

// NeedsValue reports whether steps with this action should carry a value.
// Absence is a validator warning, not an error.
func (a StepAction) NeedsValue() bool {
	switch a {
	case ActionType, ActionChange, ActionKey, ActionSelect:
		return true
	}
	return false
}

// ExpectType is a closed enumeration of assertion kinds.
type ExpectType string

const (
	ExpectVisible     ExpectType = "visible"
	ExpectNotVisible  ExpectType = "not-visible"
	ExpectExists      ExpectType = "exists"
	ExpectNotExists   ExpectType = "not-exists"
	ExpectText        ExpectType = "text"
	ExpectExactText   ExpectType = "exact-text"
	ExpectValue       ExpectType = "value"
	ExpectHasClass    ExpectType = "has-class"
	ExpectNotHasClass ExpectType = "not-has-class"
	ExpectAria        ExpectType = "aria"
	ExpectURLContains ExpectType = "url-contains"
	ExpectURLExact    ExpectType = "url-exact"
	ExpectSnapshot    ExpectType = "snapshot"
	ExpectCustom      ExpectType = "custom"
)

// KnownExpectTypes lists every supported ExpectType except ExpectCustom.
var KnownExpectTypes = []ExpectType{
	ExpectVisible, ExpectNotVisible, ExpectExists, ExpectNotExists,
	ExpectText, ExpectExactText, ExpectValue, ExpectHasClass,
	ExpectNotHasClass, ExpectAria, ExpectURLContains, ExpectURLExact,
	ExpectSnapshot,
}

// IsKnown reports whether the type is part of the supported enumeration.
// ExpectCustom is not, matching StepAction.IsKnown.
func (t ExpectType) IsKnown() bool {
	for _, k := range KnownExpectTypes {
		if t == k {
			return true
		}
	}
	return false
}

// NeedsValue reports whether expectations of this type should carry a value.
func (t ExpectType) NeedsValue() bool {
	switch t {
	case ExpectText, ExpectExactText, ExpectValue, ExpectHasClass,
		ExpectNotHasClass, ExpectAria, ExpectURLContains, ExpectURLExact:
		return true
	}
	return false
}

// NeedsSelector reports whether expectations of this type require a target
// element. Only the URL assertions are selector-free.
func (t ExpectType) NeedsSelector() bool {
	return t != ExpectURLContains && t != ExpectURLExact
}

// SelectorType identifies how a Selector locates its element.
type SelectorType string

const (
	SelectorTestID      SelectorType = "testId"
	SelectorCSS         SelectorType = "css"
	SelectorRole        SelectorType = "role"
	SelectorLabelText   SelectorType = "labelText"
	SelectorPlaceholder SelectorType = "placeholder"
	SelectorCustom      SelectorType = "custom"
)

// Selector identifies a target element independent of any test runner.
type Selector struct {
	Type    SelectorType      `json:"type"`
	Value   string            `json:"value"`
	Options map[string]string `json:"options,omitempty"`
}

// Via records how a directive entered the IR.
type Via string

const (
	ViaAttribute Via = "attribute"
	ViaComment   Via = "comment"
	ViaPattern   Via = "pattern"
)

// LocationRef points back at the markup a Step, Expectation or Case came
// from, for diagnostics and generated-code provenance comments.
type LocationRef struct {
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Via      Via    `json:"via"`
	Raw      string `json:"raw,omitempty"`
}

// Step is one user action inside a Case.
type Step struct {
	ID       string      `json:"id"`
	Action   StepAction  `json:"action"`
	Selector *Selector   `json:"selector,omitempty"`
	Value    string      `json:"value,omitempty"`
	DelayMs  int         `json:"delayMs,omitempty"`
	Source   LocationRef `json:"source"`
}

// Expectation is one assertion inside a Case.
type Expectation struct {
	ID       string      `json:"id"`
	Type     ExpectType  `json:"type"`
	Selector *Selector   `json:"selector,omitempty"`
	Value    string      `json:"value,omitempty"`
	Source   LocationRef `json:"source"`
}

// CaseType classifies a scenario.
type CaseType string

const (
	CaseUI   CaseType = "ui"
	CaseUnit CaseType = "unit"
	CaseE2E  CaseType = "e2e"
)

// Case is one scenario: an ordered sequence of steps followed by the
// expectations asserted against the resulting state.
type Case struct {
	ID           string        `json:"id"`
	Context      string        `json:"context"`
	Scenario     string        `json:"scenario"`
	Type         CaseType      `json:"type"`
	Route        string        `json:"route,omitempty"`
	Steps        []Step        `json:"steps"`
	Expectations []Expectation `json:"expectations"`
	DefinedAt    []LocationRef `json:"definedAt"`
}

// CaseID derives the deterministic case identity from context and scenario.
// It is the sole deduplication key during cross-file merge.
func CaseID(context, scenario string) string {
	if scenario == "" {
		scenario = DefaultScenario
	}
	return context + "__" + scenario
}

// SourceRef names one markup file that contributed to a Suite.
type SourceRef struct {
	FilePath string `json:"filePath"`
}

// Suite groups every Case declared under one context name. A context spread
// over several files still yields a single Suite.
type Suite struct {
	ID          string      `json:"id"`
	Context     string      `json:"context"`
	SourceFiles []SourceRef `json:"sourceFiles"`
	Cases       []Case      `json:"cases"`
}

// TestIR is the complete framework-agnostic document handed to validation
// and generation. It is rebuilt from source on every scan; a persisted copy
// is a cache, never a source of truth.
type TestIR struct {
	Version     int     `json:"version"`
	GeneratedAt string  `json:"generatedAt,omitempty"`
	SourceRoot  string  `json:"sourceRoot,omitempty"`
	Suites      []Suite `json:"suites"`
}
