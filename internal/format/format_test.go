package format

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCanonicalSortsKeys(t *testing.T) {
	src := []byte(`
[profile.default]
solc = "0.8.20"
optimizer = true
evm_version = "paris"
`)

	got, err := Canonical(src)
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}

	text := string(got)
	for _, key := range []string{"evm_version", "optimizer", "solc"} {
		if !strings.Contains(text, key) {
			t.Fatalf("canonical output lost key %q:\n%s", key, text)
		}
	}
	if strings.Index(text, "evm_version") > strings.Index(text, "optimizer") ||
		strings.Index(text, "optimizer") > strings.Index(text, "solc") {
		t.Fatalf("canonical output keys are not sorted:\n%s", text)
	}
}

func TestCanonicalIsIdempotent(t *testing.T) {
	src := []byte(`
[profile.default]
via_ir =    true
solc="0.8.20"
`)

	once, err := Canonical(src)
	if err != nil {
		t.Fatalf("first Canonical failed: %v", err)
	}
	twice, err := Canonical(once)
	if err != nil {
		t.Fatalf("second Canonical failed: %v", err)
	}
	if !bytes.Equal(once, twice) {
		t.Fatalf("canonical form is not a fixed point:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestCanonicalRejectsBrokenTOML(t *testing.T) {
	if _, err := Canonical([]byte("[profile.default\nbroken")); err == nil {
		t.Fatal("expected an error for broken TOML")
	}
}

// stubForge puts a fake forge binary on PATH so Run/Validate can be
// exercised without Foundry installed.
func stubForge(t *testing.T, script string) {
	t.Helper()
	binDir := t.TempDir()
	path := filepath.Join(binDir, "forge")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write stub forge: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunThenValidate(t *testing.T) {
	stubForge(t, "exit 0")
	dir := t.TempDir()
	writeConfig(t, dir, "[profile.default]\nsolc = \"0.8.20\"\noptimizer = true\n")

	opts := Options{Dir: dir, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// после Run конфиг каноничен и Validate проходит
	if err := Validate(context.Background(), opts); err != nil {
		t.Fatalf("Validate after Run failed: %v", err)
	}
}

func TestValidateRejectsNonCanonicalConfig(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	stubForge(t, "exit 0")
	dir := t.TempDir()
	// ключи нарочно не отсортированы
	writeConfig(t, dir, "[profile.default]\nsolc = \"0.8.20\"\noptimizer = true\n")

	var errs bytes.Buffer
	err := Validate(context.Background(), Options{Dir: dir, Stdout: &bytes.Buffer{}, Stderr: &errs})
	if err != ErrNotFormatted {
		t.Fatalf("expected ErrNotFormatted, got %v", err)
	}
	want := "error: Formatting validation failed, run `solscope fmt` to fix\n"
	if errs.String() != want {
		t.Fatalf("summary mismatch:\n got %q\nwant %q", errs.String(), want)
	}
}

func TestValidateRejectsForgeFailure(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	stubForge(t, "echo 'Diff in src/Counter.sol' >&2; exit 1")
	dir := t.TempDir()

	config := "[profile.default]\nsolc = \"0.8.20\"\n"
	canonical, err := Canonical([]byte(config))
	if err != nil {
		t.Fatalf("Canonical failed: %v", err)
	}
	writeConfig(t, dir, string(canonical))

	var out, errs bytes.Buffer
	if err := Validate(context.Background(), Options{Dir: dir, Stdout: &out, Stderr: &errs}); err != ErrNotFormatted {
		t.Fatalf("expected ErrNotFormatted, got %v", err)
	}
	if !strings.Contains(out.String(), "Diff in src/Counter.sol") {
		t.Fatalf("forge stderr must be forwarded, got %q", out.String())
	}
}

func TestValidateMissingConfigIsError(t *testing.T) {
	stubForge(t, "exit 0")
	err := Validate(context.Background(), Options{Dir: t.TempDir(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})
	if err == nil || err == ErrNotFormatted {
		t.Fatalf("expected a read error for the missing config, got %v", err)
	}
}
