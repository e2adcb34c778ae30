package plan

import (
	"strings"

	"github.com/brewdeck/brewdeck/internal/audit"
	"github.com/brewdeck/brewdeck/internal/brew"
)

// Selection is the operator's swap choice: everything, nothing, or an
// explicit set of names matched against either the installed name or the
// correlated pre-release name.
type Selection struct {
	All   bool
	Names map[string]bool
}

// ParseSelection interprets the operator's free-text swap answer:
// "all", a negative ("no", "none", "n", empty), or space-separated names.
func ParseSelection(input string) Selection {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "all":
		return Selection{All: true}
	case "", "no", "none", "n":
		return Selection{}
	}

	names := make(map[string]bool)
	for _, tok := range strings.Fields(input) {
		names[tok] = true
	}
	return Selection{Names: names}
}

// SelectionOf builds an explicit selection from a name list.
func SelectionOf(names ...string) Selection {
	if len(names) == 0 {
		return Selection{}
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return Selection{Names: set}
}

// Empty reports whether the selection names nothing.
func (s Selection) Empty() bool {
	return !s.All && len(s.Names) == 0
}

// matches reports whether a record is selected.
func (s Selection) matches(r audit.PackageRecord) bool {
	if s.All {
		return true
	}
	return s.Names[r.Name] || s.Names[r.PreReleaseName]
}

// Options are the operator decisions that shape the plan.
type Options struct {
	// ApplyUpgrades includes the batched upgrade step when the ledger
	// has outdated records
	ApplyUpgrades bool
	// Swaps selects which correlated packages to swap to their
	// pre-release variants
	Swaps Selection
	// Greedy passes --greedy to the upgrade step so auto-updating casks
	// are included
	Greedy bool
}

// Build assembles the command chain from the finalized ledger and the
// operator's decisions. The chain always opens with a definitions
// refresh and always closes with cleanup and doctor, regardless of what
// the operator selected in between.
func Build(ledger audit.Ledger, opts Options) Plan {
	steps := []Step{
		{Name: "refresh definitions", Args: []string{"update"}},
	}

	if opts.ApplyUpgrades && len(ledger.Outdated()) > 0 {
		args := []string{"upgrade"}
		if opts.Greedy {
			args = append(args, "--greedy")
		}
		// One invocation for all outdated packages so the manager can
		// batch its own dependency resolution.
		steps = append(steps, Step{Name: "upgrade outdated", Args: args})
	}

	if swaps := selectSwaps(ledger, opts.Swaps); len(swaps) > 0 {
		steps = append(steps, swapSteps(swaps)...)
	}

	steps = append(steps,
		Step{Name: "cleanup", Args: []string{"cleanup", "-s"}},
		Step{Name: "doctor", Args: []string{"doctor"}, NonFatal: true},
	)

	return NewPlan(steps...)
}

// selectSwaps filters the swappable records down to the operator's choice.
func selectSwaps(ledger audit.Ledger, sel Selection) []audit.PackageRecord {
	if sel.Empty() {
		return nil
	}
	var out []audit.PackageRecord
	for _, r := range ledger.Swappable() {
		if sel.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// swapSteps emits the remove/install pair. Removal is forced so residual
// files cannot fail the uninstall, and it always precedes the install:
// the manager requires the old package gone before a same-family
// replacement goes in. The two steps are never merged or reordered.
func swapSteps(swaps []audit.PackageRecord) []Step {
	removeArgs := []string{"uninstall", "--force"}
	installArgs := []string{"install"}

	allCasks := true
	for _, r := range swaps {
		if r.Kind != brew.KindCask {
			allCasks = false
		}
	}
	// brew resolves bare names in both namespaces; --cask is only forced
	// when the whole batch is casks.
	if allCasks {
		installArgs = append(installArgs, "--cask")
	}

	for _, r := range swaps {
		removeArgs = append(removeArgs, r.Name)
		installArgs = append(installArgs, r.PreReleaseName)
	}

	return []Step{
		{Name: "remove stable packages", Args: removeArgs},
		{Name: "install pre-release variants", Args: installArgs},
	}
}
