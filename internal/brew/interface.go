package brew

import "context"

// Executor defines the interface for running the Homebrew CLI.
// This interface allows for mocking brew invocations in tests.
type Executor interface {
	// Capture runs brew with the given arguments and returns trimmed stdout
	Capture(ctx context.Context, args ...string) (string, error)

	// Stream runs brew with the given arguments, wiring output to the
	// operator's terminal, and returns the process error (nil on exit 0)
	Stream(ctx context.Context, args ...string) error

	// Check verifies that the brew binary is available in PATH
	Check() error

	// Binary returns the brew executable name or path
	Binary() string
}
