package source

import (
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("contract C {\n    uint256 x;\n}\n")
	lineIdx := buildLineIndex(content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "middle of first line", off: 9, want: LineCol{Line: 1, Col: 10}},
		{name: "newline belongs to its line", off: 12, want: LineCol{Line: 1, Col: 13}},
		{name: "first byte of second line", off: 13, want: LineCol{Line: 2, Col: 1}},
		{name: "declaration on second line", off: 17, want: LineCol{Line: 2, Col: 5}},
		{name: "closing brace line", off: 27, want: LineCol{Line: 3, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toLineCol(lineIdx, tt.off)
			if got != tt.want {
				t.Fatalf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	got := toLineCol(nil, 5)
	if got.Line != 1 || got.Col != 6 {
		t.Fatalf("expected 1:6, got %d:%d", got.Line, got.Col)
	}
}

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		want        string
		wantChanged bool
	}{
		{name: "no carriage returns", in: "a\nb\n", want: "a\nb\n", wantChanged: false},
		{name: "crlf pairs", in: "a\r\nb\r\n", want: "a\nb\n", wantChanged: true},
		{name: "lone cr untouched", in: "a\rb", want: "a\rb", wantChanged: false},
		{name: "mixed", in: "a\r\nb\rc\n", want: "a\nb\rc\n", wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want || changed != tt.wantChanged {
				t.Fatalf("normalizeCRLF(%q) = %q, %v; want %q, %v",
					tt.in, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestFileLineOfMatchesResolve(t *testing.T) {
	fileSet := NewFileSet()
	id := fileSet.AddVirtual("test.sol", []byte("line one\nline two\nline three\n"))
	f := fileSet.Get(id)

	for off := uint32(0); off < uint32(len(f.Content)); off++ {
		start, _ := fileSet.Resolve(Span{File: id, Start: off, End: off})
		if got := f.LineOf(off); got != start.Line {
			t.Fatalf("LineOf(%d) = %d, Resolve start line = %d", off, got, start.Line)
		}
	}
}
