package brew

import "context"

// MockExecutor implements Executor for testing.
// Each method can be configured with a custom function to control behavior.
// Every invocation is recorded in Calls so tests can assert on what was run.
type MockExecutor struct {
	CaptureFunc func(args ...string) (string, error)
	StreamFunc  func(args ...string) error
	CheckFunc   func() error

	// Calls records the argument lists of all Capture and Stream invocations
	Calls [][]string
}

// NewMockExecutor creates a new MockExecutor
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// Capture runs brew with the given arguments and returns trimmed stdout
func (m *MockExecutor) Capture(_ context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, args)
	if m.CaptureFunc != nil {
		return m.CaptureFunc(args...)
	}
	return "", nil
}

// Stream runs brew with the given arguments
func (m *MockExecutor) Stream(_ context.Context, args ...string) error {
	m.Calls = append(m.Calls, args)
	if m.StreamFunc != nil {
		return m.StreamFunc(args...)
	}
	return nil
}

// Check verifies that the brew binary is available
func (m *MockExecutor) Check() error {
	if m.CheckFunc != nil {
		return m.CheckFunc()
	}
	return nil
}

// Binary returns the brew executable name
func (m *MockExecutor) Binary() string {
	return "brew"
}

// Ensure MockExecutor implements Executor interface
var _ Executor = (*MockExecutor)(nil)
