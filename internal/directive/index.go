package directive

import (
	"solscope/internal/source"
	"solscope/internal/token"
)

// Region is a closed interval of suppressed lines with an optional rule
// filter. Origin points back at the directive that created it.
type Region struct {
	StartLine uint32
	EndLine   uint32
	Filter    RuleFilter
	Origin    source.Span
}

// Contains reports whether the line is inside the region and the filter
// matches the rule.
func (r Region) Contains(line uint32, rule RuleFilter) bool {
	return line >= r.StartLine && line <= r.EndLine && r.Filter.Matches(rule)
}

// Index is the per-file disabled-region set. It is built once per file
// from the ordered directive list and then shared read-only by every
// validator.
type Index struct {
	file    *source.File
	regions []Region
	invalid []Invalid
}

// NewIndex extracts the directives from the comment list and folds them
// into regions. Pairing of disable-start/disable-end is a two-state
// automaton consumed left-to-right; every mismatch becomes an Invalid
// entry instead of a region.
func NewIndex(f *source.File, comments []token.Comment) *Index {
	idx := &Index{file: f}

	var open *Directive // nil: no open region
	for _, item := range Extract(f, comments) {
		if item.Err != nil {
			idx.invalid = append(idx.invalid, *item.Err)
			continue
		}

		d := item.Dir
		switch d.Kind {
		case DisableLine:
			idx.regions = append(idx.regions, Region{
				StartLine: d.Line,
				EndLine:   d.Line,
				Filter:    d.Filter,
				Origin:    d.Span,
			})

		case DisableNextLine:
			idx.regions = append(idx.regions, Region{
				StartLine: d.Line + 1,
				EndLine:   d.Line + 1,
				Filter:    d.Filter,
				Origin:    d.Span,
			})

		case DisableStart:
			if open != nil {
				// повторный start при открытом регионе: ошибка, первый
				// регион остаётся открытым
				idx.invalid = append(idx.invalid, Invalid{
					Text: "disable-start while a disabled region is already open",
					Span: d.Span,
					Line: d.Line,
				})
				continue
			}
			open = d

		case DisableEnd:
			if open == nil {
				idx.invalid = append(idx.invalid, Invalid{
					Text: "disable-end without a matching disable-start",
					Span: d.Span,
					Line: d.Line,
				})
				continue
			}
			idx.regions = append(idx.regions, Region{
				StartLine: open.Line,
				EndLine:   d.Line,
				Filter:    open.Filter,
				Origin:    open.Span,
			})
			open = nil
		}
	}

	if open != nil {
		// незакрытый start не создаёт регион
		idx.invalid = append(idx.invalid, Invalid{
			Text: "disable-start without a matching disable-end",
			Span: open.Span,
			Line: open.Line,
		})
	}
	return idx
}

// IsDisabled reports whether the starting location of the span is
// suppressed for the given rule. Only the start matters: trailing lines
// of a multi-line construct are not independently checked.
func (idx *Index) IsDisabled(span source.Span, rule RuleFilter) bool {
	if len(idx.regions) == 0 {
		return false
	}
	line := idx.file.LineOf(span.Start)
	for _, r := range idx.regions {
		if r.Contains(line, rule) {
			return true
		}
	}
	return false
}

// Invalid returns the malformed-directive entries in file order.
func (idx *Index) Invalid() []Invalid {
	return idx.invalid
}

// Regions returns the computed disabled regions.
func (idx *Index) Regions() []Region {
	return idx.regions
}
