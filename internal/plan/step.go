// Package plan assembles and executes the per-session command chain that
// synchronizes the system: an ordered list of typed steps run with
// short-circuit-on-failure semantics.
package plan

import "strings"

// Step is one manager invocation in the chain.
type Step struct {
	// Name is the operator-facing label for the step
	Name string
	// Args are the arguments passed to the brew binary
	Args []string
	// NonFatal marks steps whose non-zero exit does not count against
	// overall plan success. Used for the trailing doctor step, which
	// exits non-zero on mere warnings.
	NonFatal bool
}

// Command renders the step as the shell command the operator would type.
func (s Step) Command(binary string) string {
	return binary + " " + strings.Join(s.Args, " ")
}

// Plan is the ordered, immutable command chain built once per session.
// It is either executed immediately or discarded, never stored.
type Plan struct {
	steps []Step
}

// NewPlan creates a plan from an ordered list of steps.
func NewPlan(steps ...Step) Plan {
	return Plan{steps: steps}
}

// Steps returns a copy of the chain in execution order.
func (p Plan) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps in the chain.
func (p Plan) Len() int {
	return len(p.steps)
}

// Render joins the chain into the single short-circuiting command line
// shown to the operator verbatim before execution.
func (p Plan) Render(binary string) string {
	parts := make([]string, len(p.steps))
	for i, s := range p.steps {
		parts[i] = s.Command(binary)
	}
	return strings.Join(parts, " && ")
}
