package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	return dir
}

func TestListFiles(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/Counter.sol":        "contract Counter {}",
		"src/nested/Deep.sol":    "contract Deep {}",
		"test/Counter.t.sol":     "contract CounterTest {}",
		"script/Deploy.s.sol":    "contract Deploy {}",
		"src/README.md":          "not solidity",
		"lib/forge-std/Test.sol": "contract Test {}", // вне корней обхода
	})

	var errs bytes.Buffer
	got := ListFiles(dir, &errs)
	want := []string{
		"script/Deploy.s.sol",
		"src/Counter.sol",
		"src/nested/Deep.sol",
		"test/Counter.t.sol",
	}
	if len(got) != len(want) {
		t.Fatalf("ListFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListFiles[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if errs.Len() != 0 {
		t.Fatalf("unexpected walk errors: %s", errs.String())
	}
}

func TestRunProject(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/Counter.sol": `
contract Counter {
    uint256 public constant maxCount = 100;

    function increment() public {}
    function bump() internal {}
}
`,
		"test/Counter.t.sol": `
contract CounterTest {
    function setUp() public {}
    function test_Increment() public {}
    function testIncrementTwice() public {}
}
`,
		"script/Deploy.s.sol": `
contract Deploy {
    function deploy() public {}
}
`,
	})

	var errs bytes.Buffer
	report, err := Run(context.Background(), Options{Dir: dir, Jobs: 2, Stderr: &errs})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.IsValid() {
		t.Fatal("project with violations must not be valid")
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := strings.Join([]string{
		"Invalid constant or immutable name in ./src/Counter.sol on line 3: maxCount",
		"Invalid script interface in ./script/Deploy.s.sol: The only public method must be named `run`",
		"Invalid src method name in ./src/Counter.sol on line 6: bump",
		"Invalid test name in ./test/Counter.t.sol on line 5: testIncrementTwice",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("report mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}

	// повторный запуск детерминирован байт-в-байт
	report2, err := Run(context.Background(), Options{Dir: dir, Jobs: 4, Stderr: &errs})
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	var buf2 bytes.Buffer
	if err := report2.Render(&buf2); err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	if buf2.String() != want {
		t.Fatal("second run is not byte-identical")
	}
}

func TestRunCleanProject(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/Counter.sol": `
contract Counter {
    uint256 public constant MAX_COUNT = 100;

    function increment() public {}
    function _bump() internal {}
}
`,
		"script/Deploy.s.sol": `
contract Deploy {
    function setUp() public {}
    function run() public {}
}
`,
	})

	report, err := Run(context.Background(), Options{Dir: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.IsValid() || report.Len() != 0 {
		var buf bytes.Buffer
		_ = report.Render(&buf)
		t.Fatalf("expected clean report, got:\n%s", buf.String())
	}
}

func TestRunParseErrorIsFatal(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/Good.sol":   "contract Good {}",
		"src/Broken.sol": "contract Broken { function f() public {",
	})

	if _, err := Run(context.Background(), Options{Dir: dir}); err == nil {
		t.Fatal("expected parse error to fail the run")
	}
}

func TestRunEmptyProject(t *testing.T) {
	report, err := Run(context.Background(), Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.IsValid() || report.Len() != 0 {
		t.Fatal("empty project must yield an empty valid report")
	}
}

func TestRunProgressEvents(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"src/Counter.sol": "contract Counter {}",
	})

	ch := make(chan Event, 16)
	_, err := Run(context.Background(), Options{Dir: dir, Progress: ChannelSink{Ch: ch}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	close(ch)

	var statuses []Status
	for ev := range ch {
		if ev.Path != "./src/Counter.sol" {
			t.Fatalf("unexpected event path %q", ev.Path)
		}
		statuses = append(statuses, ev.Status)
	}
	want := []Status{StatusQueued, StatusWorking, StatusDone}
	if len(statuses) != len(want) {
		t.Fatalf("got statuses %v, want %v", statuses, want)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("status %d = %d, want %d", i, statuses[i], want[i])
		}
	}
}
