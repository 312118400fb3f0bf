package check

import (
	"regexp"

	"solscope/internal/ast"
)

// A regex matching valid constant names, see TestIsValidConstantName for
// examples.
var reValidConstantName = regexp.MustCompile(`^(?:[$_]*[A-Z0-9][$_]*)+$`)

func isValidConstantName(name string) bool {
	return reValidConstantName.MatchString(name)
}

// validateConstantNames checks that constant and immutable variables are
// in ALL_CAPS. It applies to every file kind, including helpers.
func validateConstantNames(in Input) []Finding {
	var out []Finding
	in.Tree.AllVariables(func(c *ast.Contract, v *ast.Variable) {
		if c != nil && c.IsInterface() {
			// интерфейсы не могут инициализировать переменные
			return
		}
		if v.IsConstantOrImmutable() && !isValidConstantName(v.Name) {
			out = append(out, newFinding(in, KindConstant, v.Name, v.Span))
		}
	})
	return out
}
