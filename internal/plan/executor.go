package plan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/brewdeck/brewdeck/internal/brew"
)

// StepError reports which chain step failed during live execution.
// Remaining steps were not run; the engine attempts no rollback.
type StepError struct {
	StepName string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("plan step %q failed: %v", e.StepName, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Step     Step
	ExitCode int
	Err      error
	Duration time.Duration
}

// Executor runs the assembled chain. Execution is synchronous and blocks
// the session until the chain completes or is interrupted.
type Executor struct {
	exec brew.Executor
	out  io.Writer
}

// NewExecutor creates an Executor over the given brew executor, writing
// progress lines to out.
func NewExecutor(e brew.Executor, out io.Writer) *Executor {
	return &Executor{exec: e, out: out}
}

// DryRun renders the chain without invoking anything.
func (e *Executor) DryRun(p Plan) string {
	return p.Render(e.exec.Binary())
}

// Run executes the chain with short-circuit-on-failure semantics: the
// first fatal step failure aborts all remaining steps. Per-step exit
// status is recorded for reporting. Context cancellation (operator
// interrupt) stops the chain; completed steps are not rolled back.
func (e *Executor) Run(ctx context.Context, p Plan) ([]StepResult, error) {
	results := make([]StepResult, 0, p.Len())

	for _, step := range p.Steps() {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		fmt.Fprintf(e.out, "==> %s: %s\n", step.Name, step.Command(e.exec.Binary()))

		start := time.Now()
		err := e.exec.Stream(ctx, step.Args...)
		result := StepResult{
			Step:     step,
			ExitCode: exitCode(err),
			Err:      err,
			Duration: time.Since(start),
		}
		results = append(results, result)

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			if step.NonFatal {
				fmt.Fprintf(e.out, "==> %s exited non-zero (ignored)\n", step.Name)
				continue
			}
			return results, &StepError{StepName: step.Name, Err: err}
		}
	}

	return results, nil
}

// exitCode extracts the process exit status from a run error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
