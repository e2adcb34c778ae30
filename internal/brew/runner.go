package brew

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

var (
	ErrBrewNotFound = errors.New("homebrew is not installed or not in PATH")
	ErrBrewCommand  = errors.New("brew command failed")
)

// InstallHint is shown to the operator when the brew binary is missing.
const InstallHint = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`

// Runner executes the Homebrew CLI
type Runner struct {
	binary string
}

// NewRunner creates a new Runner for the given brew binary name or path
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = "brew"
	}
	return &Runner{binary: binary}
}

// Binary returns the brew executable name or path
func (r *Runner) Binary() string {
	return r.binary
}

// Check verifies that the brew binary is available in PATH
func (r *Runner) Check() error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return ErrBrewNotFound
	}
	return nil
}

// Capture runs brew with the given arguments and returns trimmed stdout.
// On a non-zero exit the error wraps ErrBrewCommand with trimmed stderr
// for context.
func (r *Runner) Capture(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.Join(ErrBrewCommand, errors.New(msg))
		} else {
			err = errors.Join(ErrBrewCommand, err)
		}
		return strings.TrimSpace(stdout.String()), err
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Stream runs brew with the given arguments, attaching the process to the
// operator's terminal so progress output is visible as it happens.
func (r *Runner) Stream(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Ensure Runner implements Executor interface
var _ Executor = (*Runner)(nil)
