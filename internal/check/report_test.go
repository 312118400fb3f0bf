package check

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportRenderOrder(t *testing.T) {
	r := NewReport()
	// добавляем в нарочно перепутанном порядке
	r.AddAll([]Finding{
		{Kind: KindTestRule, File: "./test/B.t.sol", Text: "testB", Line: 9},
		{Kind: KindConstant, File: "./src/B.sol", Text: "two", Line: 4},
		{Kind: KindDirective, File: "./src/A.sol", Text: "nonsense", Line: 1},
		{Kind: KindConstant, File: "./src/A.sol", Text: "zulu", Line: 7},
		{Kind: KindConstant, File: "./src/A.sol", Text: "alpha", Line: 7},
		{Kind: KindConstant, File: "./src/A.sol", Text: "one", Line: 2},
		{Kind: KindScriptRule, File: "./script/D.s.sol", Text: "No `run` method found", Line: 3},
	})

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := strings.Join([]string{
		"Invalid constant or immutable name in ./src/A.sol on line 2: one",
		"Invalid constant or immutable name in ./src/A.sol on line 7: alpha",
		"Invalid constant or immutable name in ./src/A.sol on line 7: zulu",
		"Invalid constant or immutable name in ./src/B.sol on line 4: two",
		"Invalid script interface in ./script/D.s.sol: No `run` method found",
		"Invalid test name in ./test/B.t.sol on line 9: testB",
		"Invalid directive in ./src/A.sol: Invalid inline config item: nonsense",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("render mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}

	// повторный Render даёт байт-в-байт тот же вывод
	var again bytes.Buffer
	if err := r.Render(&again); err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	if again.String() != want {
		t.Fatal("second render is not byte-identical")
	}
}

func TestReportSuppression(t *testing.T) {
	r := NewReport()
	r.Add(Finding{Kind: KindConstant, File: "./src/A.sol", Text: "bad", Line: 3, Suppressed: true})
	r.Add(Finding{Kind: KindConstant, File: "./src/A.sol", Text: "worse", Line: 5})

	if r.Len() != 2 || r.SuppressedCount() != 1 {
		t.Fatalf("Len=%d SuppressedCount=%d, want 2 and 1", r.Len(), r.SuppressedCount())
	}
	if r.IsValid() {
		t.Fatal("report with an unsuppressed finding must not be valid")
	}

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), "bad") {
		t.Fatalf("suppressed finding rendered: %s", buf.String())
	}
}

func TestReportAllSuppressedIsValid(t *testing.T) {
	r := NewReport()
	if !r.IsValid() {
		t.Fatal("empty report must be valid")
	}
	r.Add(Finding{Kind: KindTestRule, File: "./test/A.t.sol", Text: "testBad", Line: 2, Suppressed: true})
	if !r.IsValid() {
		t.Fatal("fully suppressed report must be valid")
	}
}
