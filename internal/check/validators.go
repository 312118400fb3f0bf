package check

import (
	"solscope/internal/ast"
	"solscope/internal/directive"
	"solscope/internal/source"
)

// Input is the read-only per-file context handed to every validator.
type Input struct {
	Path  string // display path, e.g. ./src/Counter.sol
	Kind  FileKind
	File  *source.File
	Tree  *ast.File
	Index *directive.Index
}

// Validator is one convention rule. Validators are pure: they read the
// input and return findings, nothing else.
type Validator struct {
	Name string
	Run  func(in Input) []Finding
}

// Validators is the fixed rule set, dispatched in order for every file.
// The set is closed at build time; there is no registration mechanism.
var Validators = []Validator{
	{Name: "constant-name", Run: validateConstantNames},
	{Name: "src-name", Run: validateSrcNames},
	{Name: "test-name", Run: validateTestNames},
	{Name: "script-interface", Run: validateScriptRunMethod},
}

// newFinding builds a finding at the span's starting line, consulting the
// suppression index. The line number comes from the same line index the
// directive regions were built from.
func newFinding(in Input, kind Kind, text string, span source.Span) Finding {
	return Finding{
		Kind:       kind,
		File:       in.Path,
		Text:       text,
		Line:       in.File.LineOf(span.Start),
		Suppressed: in.Index.IsDisabled(span, kind.Filter()),
	}
}

// directiveFindings surfaces the malformed directives of a file as
// first-class findings. They are never suppressible.
func directiveFindings(in Input) []Finding {
	var out []Finding
	for _, inv := range in.Index.Invalid() {
		out = append(out, Finding{
			Kind: KindDirective,
			File: in.Path,
			Text: inv.Text,
			Line: inv.Line,
		})
	}
	return out
}

// libraryOf reports whether the enclosing contract is a library. Free
// functions have no enclosing contract.
func libraryOf(c *ast.Contract) bool {
	return c != nil && c.IsLibrary()
}
