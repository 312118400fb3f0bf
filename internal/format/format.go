// Package format shells out to `forge fmt` for Solidity formatting and
// keeps foundry.toml in a canonical shape.
package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
)

// ErrNotFormatted is returned by Validate when the project is not in
// canonical form. Details have already been written to the options'
// writers by the time it is returned.
var ErrNotFormatted = errors.New("invalid fmt found")

// ConfigFile is the project configuration file kept in canonical TOML.
const ConfigFile = "foundry.toml"

var errorLabel = color.New(color.FgRed, color.Bold)

// Options configures formatting operations.
type Options struct {
	// Dir is the project root. Empty means the current directory.
	Dir string
	// Stdout receives forwarded forge output. Nil means os.Stdout.
	Stdout io.Writer
	// Stderr receives failure summaries. Nil means os.Stderr.
	Stderr io.Writer
}

func (o *Options) fill() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run formats the project in place: Solidity via `forge fmt`, then
// foundry.toml rewritten canonically.
func Run(ctx context.Context, opts Options) error {
	opts.fill()

	stderr, _, err := runForge(ctx, opts.Dir, "fmt")
	if err != nil {
		return err
	}
	// forge пишет предупреждения в stderr даже при успехе
	if len(stderr) > 0 {
		fmt.Fprint(opts.Stdout, string(stderr))
	}

	configPath := filepath.Join(opts.Dir, ConfigFile)
	orig, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	canonical, err := Canonical(orig)
	if err != nil {
		return fmt.Errorf("format %s: %w", ConfigFile, err)
	}
	if err := os.WriteFile(configPath, canonical, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ConfigFile, err)
	}
	return nil
}

// Validate checks that the project is already formatted: `forge fmt
// --check` passes with empty stderr and foundry.toml equals its canonical
// form. On a formatting failure it prints the summary line and returns
// ErrNotFormatted.
func Validate(ctx context.Context, opts Options) error {
	opts.fill()

	stderr, forgeOK, err := runForge(ctx, opts.Dir, "fmt", "--check")
	if err != nil {
		return err
	}
	forgeOK = forgeOK && len(stderr) == 0
	if len(stderr) > 0 {
		fmt.Fprint(opts.Stdout, string(stderr))
	}

	orig, err := os.ReadFile(filepath.Join(opts.Dir, ConfigFile))
	if err != nil {
		return fmt.Errorf("read %s: %w", ConfigFile, err)
	}
	canonical, err := Canonical(orig)
	if err != nil {
		return fmt.Errorf("format %s: %w", ConfigFile, err)
	}
	tomlOK := bytes.Equal(orig, canonical)

	if !forgeOK || !tomlOK {
		fmt.Fprintf(opts.Stderr, "%s: Formatting validation failed, run `solscope fmt` to fix\n",
			errorLabel.Sprint("error"))
		return ErrNotFormatted
	}
	return nil
}

// Canonical returns the canonical rendering of TOML source: a decode and
// re-encode round trip that sorts keys and normalizes whitespace.
// Comments do not survive the round trip.
func Canonical(src []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = "" // entries stay flush left, как пишет forge init
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// runForge executes forge with the given args in dir and returns its
// stderr plus whether it exited zero. A missing binary or a spawn failure
// is an error; a nonzero exit is a result, not an error.
func runForge(ctx context.Context, dir string, args ...string) (stderr []byte, ok bool, err error) {
	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = dir

	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	if runErr == nil {
		return errBuf.Bytes(), true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return errBuf.Bytes(), false, nil
	}
	return nil, false, fmt.Errorf("run forge: %w", runErr)
}
