// Package spec generates a human-readable protocol specification for a
// Foundry project from its test names. Source contracts are matched to
// test contracts by file stem, and test function names are rewritten into
// plain-English requirements.
package spec

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"solscope/internal/ast"
	"solscope/internal/lexer"
	"solscope/internal/parser"
	"solscope/internal/source"
)

// FreeFunctionsContract is the pseudo-contract that collects file-level
// functions not belonging to any contract.
const FreeFunctionsContract = "FreeFunctions"

var (
	boldText     = color.New(color.Bold)
	untestedText = color.New(color.FgRed)
)

// Options configures a generation run.
type Options struct {
	// Dir is the project root. Empty means the current directory.
	Dir string
	// Stdout receives the rendered specification. Nil means os.Stdout.
	Stdout io.Writer
	// Stderr receives walk warnings. Nil means os.Stderr.
	Stderr io.Writer
}

// parsedContract is one contract with the path it came from. Functions
// keep their source order.
type parsedContract struct {
	path string
	name string
	fns  []*ast.Function
}

// testTarget derives the source contract a test file is expected to
// cover: the file stem with a trailing ".t" stripped.
func (c parsedContract) testTarget() string {
	stem := strings.TrimSuffix(filepath.Base(c.path), ".sol")
	return strings.TrimSuffix(stem, ".t")
}

// Run parses src and test contracts and prints the specification tree.
func Run(opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	srcContracts, err := collect(opts, "src", ".sol")
	if err != nil {
		return err
	}
	testContracts, err := collect(opts, "test", ".t.sol")
	if err != nil {
		return err
	}

	for _, src := range srcContracts {
		var tests []parsedContract
		for _, tc := range testContracts {
			if tc.testTarget() == src.name {
				tests = append(tests, tc)
			}
		}
		printContract(opts.Stdout, src, tests)
	}
	return nil
}

// collect parses every matching file under dir/root into contracts.
// Interfaces are skipped: they carry no behavior to specify. Free
// functions across all files end up in one trailing pseudo-contract.
func collect(opts Options, root, suffix string) ([]parsedContract, error) {
	var contracts []parsedContract
	var freeFns []*ast.Function

	fileSet := source.NewFileSetWithBase(opts.Dir)
	rootPath := filepath.Join(opts.Dir, root)
	if _, err := os.Stat(rootPath); err != nil {
		return nil, nil
	}

	walkErr := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, suffix) {
			return nil
		}

		id, err := fileSet.Load(path)
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			return nil
		}
		f := fileSet.Get(id)

		toks, _, err := lexer.Lex(f)
		if err != nil {
			return err
		}
		tree, err := parser.Parse(f, toks)
		if err != nil {
			return err
		}

		for _, c := range tree.Contracts {
			if c.IsInterface() {
				continue
			}
			contracts = append(contracts, parsedContract{path: path, name: c.Name, fns: c.Functions})
		}
		freeFns = append(freeFns, tree.Functions...)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if len(freeFns) > 0 {
		contracts = append(contracts, parsedContract{name: FreeFunctionsContract, fns: freeFns})
	}
	return contracts, nil
}

// printContract renders one source contract as a tree: its functions as
// branches, with matching test requirements as leaves. Functions with no
// matching test contract render red.
func printContract(w io.Writer, src parsedContract, tests []parsedContract) {
	fmt.Fprintf(w, "\n%s %s\n", boldText.Sprint("Contract Specification:"), boldText.Sprint(src.name))

	for i, fn := range src.fns {
		last := i == len(src.fns)-1
		branch := "├── "
		if last {
			branch = "└── "
		}

		tc, ok := matchTestContract(tests, fn.Name())
		if !ok {
			fmt.Fprintf(w, "%s%s\n", branch, untestedText.Sprint(fn.Name()))
			continue
		}
		fmt.Fprintf(w, "%s%s\n", branch, fn.Name())

		testFns := testFunctions(tc)
		for j, tf := range testFns {
			leaf := leafPrefix(last, j == len(testFns)-1)
			req, ok := requirement(tf.Name())
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s%s\n", leaf, req)
		}
	}
}

// matchTestContract finds the test contract named after the function,
// compared case-insensitively (contract names are capitalized, function
// names are not).
func matchTestContract(tests []parsedContract, fnName string) (parsedContract, bool) {
	for _, tc := range tests {
		if strings.EqualFold(tc.name, fnName) {
			return tc, true
		}
	}
	return parsedContract{}, false
}

// testFunctions filters a test contract down to its test entry points.
func testFunctions(c parsedContract) []*ast.Function {
	var out []*ast.Function
	for _, f := range c.fns {
		if f.IsPublicOrExternal() && strings.HasPrefix(f.Name(), "test") {
			out = append(out, f)
		}
	}
	return out
}

func leafPrefix(lastBranch, lastLeaf bool) string {
	switch {
	case !lastBranch && lastLeaf:
		return "│   └── "
	case !lastBranch:
		return "│   ├── "
	case lastLeaf:
		return "    └── "
	default:
		return "    ├── "
	}
}

// requirement rewrites a test name into prose: everything up to and
// including the first underscore is dropped, remaining underscores become
// colons, and each capital gets a leading space. Names without an
// underscore carry no requirement.
func requirement(testName string) (string, bool) {
	_, trimmed, found := strings.Cut(testName, "_")
	if !found {
		return "", false
	}

	var b strings.Builder
	for _, r := range strings.ReplaceAll(trimmed, "_", ":") {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String(), true
}
