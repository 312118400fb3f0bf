package check

import (
	"fmt"

	"solscope/internal/directive"
)

// Kind identifies which validator produced a finding. The declaration
// order is the sort order of the rendered report.
type Kind uint8

const (
	// KindConstant is a constant or immutable naming violation.
	KindConstant Kind = iota
	// KindScriptRule is a script interface violation.
	KindScriptRule
	// KindSrcRule is a src method naming violation.
	KindSrcRule
	// KindTestRule is a test naming violation.
	KindTestRule
	// KindDirective is a malformed suppression directive.
	KindDirective
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant-name"
	case KindScriptRule:
		return "script-interface"
	case KindSrcRule:
		return "src-name"
	case KindTestRule:
		return "test-name"
	case KindDirective:
		return "directive"
	}
	return "unknown"
}

// Filter maps the finding kind onto the directive rule filter namespace.
// Directive findings themselves are not suppressible.
func (k Kind) Filter() directive.RuleFilter {
	switch k {
	case KindConstant:
		return directive.FilterConstant
	case KindScriptRule:
		return directive.FilterScript
	case KindSrcRule:
		return directive.FilterSrc
	case KindTestRule:
		return directive.FilterTest
	}
	return directive.FilterAll
}

// Finding is a single convention violation. Immutable once created; the
// Suppressed flag is computed at creation time against the file's
// disabled-region index.
type Finding struct {
	Kind       Kind
	File       string
	Text       string
	Line       uint32
	Suppressed bool
}

// Description renders the user-facing report line for the finding.
func (f Finding) Description() string {
	switch f.Kind {
	case KindConstant:
		return fmt.Sprintf("Invalid constant or immutable name in %s on line %d: %s", f.File, f.Line, f.Text)
	case KindScriptRule:
		return fmt.Sprintf("Invalid script interface in %s: %s", f.File, f.Text)
	case KindSrcRule:
		return fmt.Sprintf("Invalid src method name in %s on line %d: %s", f.File, f.Line, f.Text)
	case KindTestRule:
		return fmt.Sprintf("Invalid test name in %s on line %d: %s", f.File, f.Line, f.Text)
	case KindDirective:
		return fmt.Sprintf("Invalid directive in %s: Invalid inline config item: %s", f.File, f.Text)
	}
	return fmt.Sprintf("Invalid item in %s on line %d: %s", f.File, f.Line, f.Text)
}
