package check

import (
	"path/filepath"
	"strings"
)

// FileKind is the semantic category of a project file, derived purely
// from its path.
type FileKind uint8

const (
	// KindNone is a file no kind-scoped validator applies to (helpers,
	// mocks, anything outside the three roots).
	KindNone FileKind = iota
	// KindScript is an executable script: under script/ ending in .s.sol.
	KindScript
	// KindSrc is a core contract: under src/ ending in .sol.
	KindSrc
	// KindTest is a test contract: under test/ ending in .t.sol.
	KindTest
)

func (k FileKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindSrc:
		return "src"
	case KindTest:
		return "test"
	}
	return "none"
}

// ClassifyFile maps a project-relative path to its kind. Suffixes are
// matched literally and case-sensitively: "Foo.sol" and "Foo.t.sol" share
// a last extension but play different roles, so no extension splitting.
func ClassifyFile(path string) FileKind {
	p := filepath.ToSlash(path)
	p = strings.TrimPrefix(p, "./")

	switch {
	case strings.HasPrefix(p, "script/") && strings.HasSuffix(p, ".s.sol"):
		return KindScript
	case strings.HasPrefix(p, "test/") && strings.HasSuffix(p, ".t.sol"):
		return KindTest
	case strings.HasPrefix(p, "src/") && strings.HasSuffix(p, ".sol"):
		return KindSrc
	default:
		return KindNone
	}
}
