package check

import (
	"regexp"
	"strings"

	"solscope/internal/ast"
)

// A regex matching valid test names, see TestIsValidTestName for
// examples.
var reValidTestName = regexp.MustCompile(`^test(Fork)?(Fuzz)?(_Revert(If|When|On|Given))?_\w+$`)

var revertKeywords = map[string]bool{
	"If":    true,
	"When":  true,
	"On":    true,
	"Given": true,
}

// isValidTestName applies the structural regex plus a per-segment check
// the regex cannot express without look-around: any underscore-delimited
// segment containing "Revert" must start with it, and the remainder must
// be exactly one of the allowed keywords. This rejects the likes of
// `test_RevertIfCondition` and `test_Reverted_Foo`.
func isValidTestName(name string) bool {
	if !strings.HasPrefix(name, "test") {
		return false
	}
	if !reValidTestName.MatchString(name) {
		return false
	}
	for _, segment := range strings.Split(name, "_") {
		if !strings.Contains(segment, "Revert") {
			continue
		}
		rest, ok := strings.CutPrefix(segment, "Revert")
		if !ok {
			return false
		}
		if !revertKeywords[rest] {
			return false
		}
	}
	return true
}

// isTestFunction reports whether the function is a test entry point:
// public or external, named with the `test` prefix.
func isTestFunction(f *ast.Function) bool {
	return f.IsPublicOrExternal() && strings.HasPrefix(f.Name(), "test")
}

// validateTestNames checks the naming convention for test functions in
// test contracts.
func validateTestNames(in Input) []Finding {
	if in.Kind != KindTest {
		return nil
	}

	var out []Finding
	in.Tree.AllFunctions(func(_ *ast.Contract, f *ast.Function) {
		if isTestFunction(f) && !isValidTestName(f.Name()) {
			out = append(out, newFinding(in, KindTestRule, f.Name(), f.Span))
		}
	})
	return out
}
