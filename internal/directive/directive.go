// Package directive implements the inline suppression subsystem: parsing
// 'solscope:' comments into typed directives and answering whether a
// source location is silenced for a given rule.
//
// The grammar is a closed set. A comment that starts with the marker but
// does not parse into a recognized form is an explicit error carried
// through to the report — a typo in a directive must never silently turn
// suppression off.
package directive

import (
	"solscope/internal/source"
)

// Marker is the token that introduces a suppression directive inside a
// comment.
const Marker = "solscope:"

// Kind is the directive form.
type Kind uint8

const (
	// DisableNextLine suppresses findings on the line after the directive.
	DisableNextLine Kind = iota
	// DisableLine suppresses findings on the directive's own line.
	DisableLine
	// DisableStart opens a suppressed region.
	DisableStart
	// DisableEnd closes the open suppressed region.
	DisableEnd
)

func (k Kind) String() string {
	switch k {
	case DisableNextLine:
		return "disable-next-line"
	case DisableLine:
		return "disable-line"
	case DisableStart:
		return "disable-start"
	case DisableEnd:
		return "disable-end"
	}
	return "unknown"
}

// RuleFilter restricts a directive to one validator kind. FilterAll (the
// zero value) suppresses every kind.
type RuleFilter uint8

const (
	// FilterAll matches every rule.
	FilterAll RuleFilter = iota
	// FilterConstant matches the constant-name rule.
	FilterConstant
	// FilterScript matches the script-interface rule.
	FilterScript
	// FilterSrc matches the src-name rule.
	FilterSrc
	// FilterTest matches the test-name rule.
	FilterTest
)

// ruleNames maps the payload spelling to a filter. These are the names
// users write in directive comments.
var ruleNames = map[string]RuleFilter{
	"constant-name":    FilterConstant,
	"script-interface": FilterScript,
	"src-name":         FilterSrc,
	"test-name":        FilterTest,
}

func (f RuleFilter) String() string {
	for name, filter := range ruleNames {
		if filter == f {
			return name
		}
	}
	return "all"
}

// Matches reports whether a region with this filter silences the given
// rule.
func (f RuleFilter) Matches(rule RuleFilter) bool {
	return f == FilterAll || f == rule
}

// Directive is one parsed suppression instruction.
type Directive struct {
	Kind   Kind
	Filter RuleFilter
	Span   source.Span
	Line   uint32 // 1-based line of the directive comment
}

// Invalid is a marker comment that failed to parse as a directive.
type Invalid struct {
	Text string // the offending payload, verbatim
	Span source.Span
	Line uint32
}

// Item is one entry of the ordered extraction result: exactly one of Dir
// or Err is set.
type Item struct {
	Dir *Directive
	Err *Invalid
}
