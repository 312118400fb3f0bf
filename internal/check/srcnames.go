package check

import (
	"strings"

	"solscope/internal/ast"
)

func isValidInternalOrPrivateName(name string) bool {
	return strings.HasPrefix(name, "_")
}

// validateSrcNames checks that internal and private functions in src
// contracts are prefixed with an underscore. Libraries are exempt:
// their internal functions are the public API surface.
func validateSrcNames(in Input) []Finding {
	if in.Kind != KindSrc {
		return nil
	}

	var out []Finding
	in.Tree.AllFunctions(func(c *ast.Contract, f *ast.Function) {
		if libraryOf(c) {
			return
		}
		switch f.Kind {
		case ast.FnConstructor, ast.FnFallback, ast.FnReceive:
			// псевдоимена никогда не нарушают правило, даже со старым
			// синтаксисом `constructor() internal`
			return
		}
		if f.IsInternalOrPrivate() && !isValidInternalOrPrivateName(f.Name()) {
			out = append(out, newFinding(in, KindSrcRule, f.Name(), f.Span))
		}
	})
	return out
}
