package directive

import (
	"testing"

	"solscope/internal/lexer"
	"solscope/internal/source"
	"solscope/internal/token"
)

// lineStart returns the byte offset of the first character of the given
// 1-based line.
func lineStart(content []byte, line uint32) uint32 {
	cur := uint32(1)
	for i, b := range content {
		if cur == line {
			return uint32(i)
		}
		if b == '\n' {
			cur++
		}
	}
	return 0
}

func commentsOf(t *testing.T, content string) (*source.File, []token.Comment) {
	t.Helper()
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("test.sol", []byte(content))
	f := fileSet.Get(id)
	_, comments, err := lexer.Lex(f)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	return f, comments
}

func TestExtractRecognizedForms(t *testing.T) {
	content := `// solscope: disable-next-line
// solscope: disable-line constant-name
/* solscope: disable-start */
// solscope: disable-end
// an ordinary comment
// solscope is also ordinary (no colon-marker prefix match needs the colon)
`
	f, comments := commentsOf(t, content)
	items := Extract(f, comments)

	if len(items) != 4 {
		t.Fatalf("expected 4 directives, got %d", len(items))
	}
	wantKinds := []Kind{DisableNextLine, DisableLine, DisableStart, DisableEnd}
	for i, item := range items {
		if item.Err != nil {
			t.Fatalf("item %d unexpectedly invalid: %q", i, item.Err.Text)
		}
		if item.Dir.Kind != wantKinds[i] {
			t.Fatalf("item %d: kind %s, want %s", i, item.Dir.Kind, wantKinds[i])
		}
	}
	if items[1].Dir.Filter != FilterConstant {
		t.Fatalf("expected constant-name filter, got %s", items[1].Dir.Filter)
	}
	if items[0].Dir.Line != 1 || items[3].Dir.Line != 4 {
		t.Fatalf("directive lines wrong: %d, %d", items[0].Dir.Line, items[3].Dir.Line)
	}
}

func TestExtractMalformedDirectives(t *testing.T) {
	tests := []struct {
		name    string
		comment string
	}{
		{name: "typoed keyword", comment: "// solscope: disable-next-lien"},
		{name: "unknown rule name", comment: "// solscope: disable-line bad-rule"},
		{name: "empty payload", comment: "// solscope:"},
		{name: "trailing junk", comment: "// solscope: disable-line constant-name extra"},
		{name: "this directive is invalid", comment: "// solscope: this directive is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, comments := commentsOf(t, tt.comment+"\n")
			items := Extract(f, comments)
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			if items[0].Err == nil {
				t.Fatalf("expected invalid directive, got %+v", items[0].Dir)
			}
		})
	}
}

func TestIndexLineForms(t *testing.T) {
	content := `contract C {
    // solscope: disable-next-line
    uint256 constant bad = 1;
    uint256 constant alsoBad = 2;
    uint256 constant onSameLine = 3; // solscope: disable-line
}
`
	f, comments := commentsOf(t, content)
	idx := NewIndex(f, comments)

	if len(idx.Invalid()) != 0 {
		t.Fatalf("unexpected invalid directives: %+v", idx.Invalid())
	}
	if len(idx.Regions()) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(idx.Regions()))
	}

	lineSpan := func(line uint32) source.Span {
		off := lineStart(f.Content, line)
		return source.Span{File: f.ID, Start: off, End: off + 1}
	}

	if !idx.IsDisabled(lineSpan(3), FilterConstant) {
		t.Fatal("line 3 must be disabled by disable-next-line")
	}
	if idx.IsDisabled(lineSpan(4), FilterConstant) {
		t.Fatal("line 4 must not be disabled")
	}
	if !idx.IsDisabled(lineSpan(5), FilterConstant) {
		t.Fatal("line 5 must be disabled by disable-line")
	}
}

func TestIndexStartEndAutomaton(t *testing.T) {
	content := `// line 1
// solscope: disable-start
// line 3
// line 4
// solscope: disable-end
// line 6
`
	f, comments := commentsOf(t, content)
	idx := NewIndex(f, comments)

	if len(idx.Invalid()) != 0 {
		t.Fatalf("unexpected invalid directives: %+v", idx.Invalid())
	}
	regions := idx.Regions()
	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}
	if regions[0].StartLine != 2 || regions[0].EndLine != 5 {
		t.Fatalf("region covers lines %d-%d, want 2-5", regions[0].StartLine, regions[0].EndLine)
	}
}

func TestIndexUnmatchedStart(t *testing.T) {
	f, comments := commentsOf(t, "// solscope: disable-start\nuint256 constant x = 1;\n")
	idx := NewIndex(f, comments)

	if len(idx.Regions()) != 0 {
		t.Fatalf("unmatched start must not create regions, got %+v", idx.Regions())
	}
	if len(idx.Invalid()) != 1 {
		t.Fatalf("expected exactly 1 invalid directive, got %d", len(idx.Invalid()))
	}
}

func TestIndexStrayEnd(t *testing.T) {
	f, comments := commentsOf(t, "// solscope: disable-end\n")
	idx := NewIndex(f, comments)

	if len(idx.Invalid()) != 1 || len(idx.Regions()) != 0 {
		t.Fatalf("stray end: invalid=%d regions=%d, want 1 and 0",
			len(idx.Invalid()), len(idx.Regions()))
	}
}

func TestIndexDoubleStart(t *testing.T) {
	content := `// solscope: disable-start
// solscope: disable-start
// solscope: disable-end
`
	f, comments := commentsOf(t, content)
	idx := NewIndex(f, comments)

	// второй start — ошибка, но первый регион всё равно закрывается
	if len(idx.Invalid()) != 1 {
		t.Fatalf("expected 1 invalid directive, got %d", len(idx.Invalid()))
	}
	regions := idx.Regions()
	if len(regions) != 1 || regions[0].StartLine != 1 || regions[0].EndLine != 3 {
		t.Fatalf("expected region 1-3, got %+v", regions)
	}
}

func TestIndexRuleFilter(t *testing.T) {
	content := `// solscope: disable-start test-name
// line 2
// solscope: disable-end
`
	f, comments := commentsOf(t, content)
	idx := NewIndex(f, comments)

	off := lineStart(f.Content, 2)
	span := source.Span{File: f.ID, Start: off, End: off + 1}
	if f.LineOf(span.Start) != 2 {
		t.Fatalf("fixture drift: span is on line %d, want 2", f.LineOf(span.Start))
	}
	if !idx.IsDisabled(span, FilterTest) {
		t.Fatal("test-name findings must be disabled inside the region")
	}
	if idx.IsDisabled(span, FilterConstant) {
		t.Fatal("constant-name findings must not be disabled by a test-name filter")
	}
}
