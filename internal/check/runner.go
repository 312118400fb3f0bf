// Package check walks a Foundry project, runs the convention validators
// over every Solidity file, and aggregates findings into a report.
package check

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"solscope/internal/directive"
	"solscope/internal/lexer"
	"solscope/internal/parser"
	"solscope/internal/source"
)

// Roots are the conventional project directories the checker scans.
var Roots = []string{"src", "script", "test"}

// Options configures a check run.
type Options struct {
	// Dir is the project root. Empty means the current directory.
	Dir string
	// Jobs bounds worker parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file pipeline events. Nil disables them.
	Progress ProgressSink
	// Stderr receives walk/read warnings. Nil means os.Stderr.
	Stderr io.Writer
}

// Run executes the full pipeline and returns the populated report. A
// parse failure in any file aborts the run; walk and read errors only
// skip the affected entry.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Progress == nil {
		opts.Progress = nopSink{}
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	files := ListFiles(opts.Dir, opts.Stderr)
	report := NewReport()
	if len(files) == 0 {
		return report, nil
	}

	// FileSet заполняется до запуска воркеров: Load не потокобезопасен
	fileSet := source.NewFileSetWithBase(opts.Dir)
	loaded := make([]source.FileID, 0, len(files))
	displays := make([]string, 0, len(files))
	for _, rel := range files {
		id, err := fileSet.Load(filepath.Join(opts.Dir, filepath.FromSlash(rel)))
		if err != nil {
			fmt.Fprintln(opts.Stderr, err)
			continue
		}
		loaded = append(loaded, id)
		displays = append(displays, "./"+rel)
		opts.Progress.Send(Event{Path: "./" + rel, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы результатов уникальны для каждой горутины, мьютекс не нужен
	results := make([][]Finding, len(loaded))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(loaded)))

	for i := range loaded {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			opts.Progress.Send(Event{Path: displays[i], Status: StatusWorking})
			findings, err := checkOne(fileSet.Get(loaded[i]), displays[i])
			if err != nil {
				opts.Progress.Send(Event{Path: displays[i], Status: StatusError})
				return err
			}
			results[i] = findings
			opts.Progress.Send(Event{Path: displays[i], Status: StatusDone})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// слияние в порядке обхода; Render всё равно сортирует
	for _, findings := range results {
		report.AddAll(findings)
	}
	return report, nil
}

// checkOne runs the per-file pipeline: lex, parse, directive index,
// classification, validator dispatch.
func checkOne(f *source.File, display string) ([]Finding, error) {
	toks, comments, err := lexer.Lex(f)
	if err != nil {
		return nil, err
	}
	tree, err := parser.Parse(f, toks)
	if err != nil {
		return nil, err
	}

	in := Input{
		Path:  display,
		Kind:  ClassifyFile(display),
		File:  f,
		Tree:  tree,
		Index: directive.NewIndex(f, comments),
	}

	findings := directiveFindings(in)
	for _, v := range Validators {
		findings = append(findings, v.Run(in)...)
	}
	return findings, nil
}

// ListFiles returns the sorted, slash-separated relative paths of every
// .sol file under the conventional roots. Walk errors are logged to w and
// the entry is skipped; a missing root is skipped silently.
func ListFiles(dir string, w io.Writer) []string {
	if w == nil {
		w = os.Stderr
	}

	var files []string
	for _, root := range Roots {
		rootPath := filepath.Join(dir, root)
		if _, err := os.Stat(rootPath); err != nil {
			continue
		}
		err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintln(w, err)
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(path, ".sol") {
				return nil
			}
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				fmt.Fprintln(w, err)
				return nil
			}
			files = append(files, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			fmt.Fprintln(w, err)
		}
	}

	// детерминированный порядок обхода
	sort.Strings(files)
	return files
}
