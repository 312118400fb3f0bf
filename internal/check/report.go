package check

import (
	"fmt"
	"io"
	"sort"
)

// Report is the append-only collection of findings across all files.
// Ordering of the rendered output is a total order over (kind, file,
// line, text) so repeated runs produce byte-identical reports regardless
// of how findings were produced.
type Report struct {
	items []Finding
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends one finding.
func (r *Report) Add(f Finding) {
	r.items = append(r.items, f)
}

// AddAll appends a batch of findings.
func (r *Report) AddAll(items []Finding) {
	r.items = append(r.items, items...)
}

// Len returns the total number of findings, suppressed included.
func (r *Report) Len() int {
	return len(r.items)
}

// SuppressedCount returns how many findings were silenced by directives.
func (r *Report) SuppressedCount() int {
	n := 0
	for i := range r.items {
		if r.items[i].Suppressed {
			n++
		}
	}
	return n
}

// IsValid reports whether the project passed: true iff no unsuppressed
// finding exists.
func (r *Report) IsValid() bool {
	for i := range r.items {
		if !r.items[i].Suppressed {
			return false
		}
	}
	return true
}

// sortItems orders findings by (kind, file, line, text).
func (r *Report) sortItems() {
	sort.SliceStable(r.items, func(i, j int) bool {
		fi, fj := r.items[i], r.items[j]
		if fi.Kind != fj.Kind {
			return fi.Kind < fj.Kind
		}
		if fi.File != fj.File {
			return fi.File < fj.File
		}
		if fi.Line != fj.Line {
			return fi.Line < fj.Line
		}
		return fi.Text < fj.Text
	})
}

// Render writes one line per unsuppressed finding in deterministic order.
func (r *Report) Render(w io.Writer) error {
	r.sortItems()
	for i := range r.items {
		if r.items[i].Suppressed {
			continue
		}
		if _, err := fmt.Fprintln(w, r.items[i].Description()); err != nil {
			return err
		}
	}
	return nil
}
