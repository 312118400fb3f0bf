package check

import (
	"fmt"
	"strings"

	"solscope/internal/ast"
	"solscope/internal/source"
)

// validateScriptRunMethod checks that a script exposes exactly one public
// method, named `run`. setUp and the constructor are not counted. The
// check is file-wide, so findings report at the enclosing contract's
// location rather than a method line.
func validateScriptRunMethod(in Input) []Finding {
	if in.Kind != KindScript {
		return nil
	}

	var publicMethods []string
	var loc source.Span
	if len(in.Tree.Contracts) > 0 {
		loc = in.Tree.Contracts[0].Span
	}

	in.Tree.AllFunctions(func(c *ast.Contract, f *ast.Function) {
		if c == nil {
			return
		}
		name := f.Name()
		if f.IsPublicOrExternal() && name != "setUp" && name != "constructor" {
			publicMethods = append(publicMethods, name)
		}
	})

	switch len(publicMethods) {
	case 0:
		return []Finding{newFinding(in, KindScriptRule, "No `run` method found", loc)}
	case 1:
		if publicMethods[0] == "run" {
			return nil
		}
		return []Finding{newFinding(in, KindScriptRule, "The only public method must be named `run`", loc)}
	default:
		text := fmt.Sprintf(
			"Scripts must have a single public method named `run` (excluding `setUp`), but the following methods were found: %s",
			quoteList(publicMethods),
		)
		return []Finding{newFinding(in, KindScriptRule, text, loc)}
	}
}

// quoteList renders names as `["a", "b"]`.
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
