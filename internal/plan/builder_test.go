package plan

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewdeck/brewdeck/internal/audit"
	"github.com/brewdeck/brewdeck/internal/brew"
)

func sampleLedger() audit.Ledger {
	return audit.Rank([]audit.PackageRecord{
		{Name: "widget", Kind: brew.KindFormula, Outdated: true},
		{Name: "gadget", Kind: brew.KindCask, PreReleaseName: "gadget-beta"},
		{Name: "tool", Kind: brew.KindFormula},
	})
}

// genLedger produces arbitrary ledgers with a mix of outdated and
// swappable records.
func genLedger() gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(
		gen.Identifier(),
		gen.Bool(),
		gen.Bool(),
	).Map(func(values []interface{}) audit.PackageRecord {
		r := audit.PackageRecord{
			Name:     values[0].(string),
			Kind:     brew.KindFormula,
			Outdated: values[1].(bool),
		}
		if values[2].(bool) {
			r.PreReleaseName = r.Name + "-beta"
		}
		return r
	})).Map(func(records []audit.PackageRecord) audit.Ledger {
		return audit.Rank(records)
	})
}

func genSelection() gopter.Gen {
	return gen.IntRange(0, 2).Map(func(kind int) Selection {
		switch kind {
		case 0:
			return Selection{}
		case 1:
			return Selection{All: true}
		default:
			return SelectionOf("widget", "gadget-beta")
		}
	})
}

func TestPlanAlwaysOpensWithRefreshAndClosesWithHygiene(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("refresh first, cleanup+doctor last for any options", prop.ForAll(
		func(ledger audit.Ledger, applyUpgrades bool, sel Selection, greedy bool) bool {
			p := Build(ledger, Options{ApplyUpgrades: applyUpgrades, Swaps: sel, Greedy: greedy})
			steps := p.Steps()

			if len(steps) < 3 {
				return false
			}
			if steps[0].Args[0] != "update" {
				return false
			}
			if steps[len(steps)-2].Args[0] != "cleanup" {
				return false
			}
			return steps[len(steps)-1].Args[0] == "doctor"
		},
		genLedger(),
		gen.Bool(),
		genSelection(),
		gen.Bool(),
	))

	properties.Property("remove immediately precedes install and never reorders", prop.ForAll(
		func(ledger audit.Ledger, applyUpgrades bool) bool {
			p := Build(ledger, Options{ApplyUpgrades: applyUpgrades, Swaps: Selection{All: true}})
			steps := p.Steps()

			removeIdx := -1
			for i, s := range steps {
				if s.Args[0] == "uninstall" {
					removeIdx = i
				}
			}
			if removeIdx == -1 {
				// No swappable records; nothing to check.
				return len(ledger.Swappable()) == 0
			}
			return steps[removeIdx+1].Args[0] == "install"
		},
		genLedger(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestUpgradeOnlyPlanHasFourSteps(t *testing.T) {
	p := Build(sampleLedger(), Options{ApplyUpgrades: true, Greedy: true})
	steps := p.Steps()

	require.Len(t, steps, 4)
	assert.Equal(t, []string{"update"}, steps[0].Args)
	assert.Equal(t, []string{"upgrade", "--greedy"}, steps[1].Args)
	assert.Equal(t, []string{"cleanup", "-s"}, steps[2].Args)
	assert.Equal(t, []string{"doctor"}, steps[3].Args)
	assert.True(t, steps[3].NonFatal, "doctor step exits non-zero on warnings and must not fail the plan")
}

func TestUpgradeDeclinedPlanIsHygieneOnly(t *testing.T) {
	p := Build(sampleLedger(), Options{ApplyUpgrades: false})
	steps := p.Steps()

	require.Len(t, steps, 3)
	assert.Equal(t, "refresh definitions", steps[0].Name)
	assert.Equal(t, "cleanup", steps[1].Name)
	assert.Equal(t, "doctor", steps[2].Name)
}

func TestUpgradeSkippedWhenNothingOutdated(t *testing.T) {
	ledger := audit.Rank([]audit.PackageRecord{{Name: "tool"}})
	p := Build(ledger, Options{ApplyUpgrades: true})

	for _, s := range p.Steps() {
		assert.NotEqual(t, "upgrade", s.Args[0], "no upgrade step without outdated records")
	}
}

func TestSwapPairEmittedForSelection(t *testing.T) {
	p := Build(sampleLedger(), Options{Swaps: SelectionOf("gadget")})
	steps := p.Steps()

	require.Len(t, steps, 5)
	assert.Equal(t, []string{"uninstall", "--force", "gadget"}, steps[1].Args)
	assert.Equal(t, []string{"install", "--cask", "gadget-beta"}, steps[2].Args)
	assert.False(t, steps[1].NonFatal)
	assert.False(t, steps[2].NonFatal)
}

func TestSwapSelectionMatchesPreReleaseName(t *testing.T) {
	p := Build(sampleLedger(), Options{Swaps: SelectionOf("gadget-beta")})

	var sawRemove bool
	for _, s := range p.Steps() {
		if s.Args[0] == "uninstall" {
			sawRemove = true
			assert.Contains(t, s.Args, "gadget")
		}
	}
	assert.True(t, sawRemove, "selection by pre-release name must select the installed package")
}

func TestSwapInstallOmitsCaskFlagForFormulae(t *testing.T) {
	ledger := audit.Rank([]audit.PackageRecord{
		{Name: "widget", Kind: brew.KindFormula, PreReleaseName: "widget@beta"},
	})
	p := Build(ledger, Options{Swaps: Selection{All: true}})

	var install Step
	for _, s := range p.Steps() {
		if s.Args[0] == "install" {
			install = s
		}
	}
	assert.Equal(t, []string{"install", "widget@beta"}, install.Args)
}

func TestParseSelection(t *testing.T) {
	assert.True(t, ParseSelection("all").All)
	assert.True(t, ParseSelection("ALL").All)
	assert.True(t, ParseSelection("no").Empty())
	assert.True(t, ParseSelection("none").Empty())
	assert.True(t, ParseSelection("n").Empty())
	assert.True(t, ParseSelection("  ").Empty())

	sel := ParseSelection("widget gadget-beta")
	assert.False(t, sel.Empty())
	assert.True(t, sel.Names["widget"])
	assert.True(t, sel.Names["gadget-beta"])
}

func TestRenderJoinsWithShortCircuitOperator(t *testing.T) {
	p := Build(sampleLedger(), Options{ApplyUpgrades: true})
	rendered := p.Render("brew")

	assert.Contains(t, rendered, "brew update && brew upgrade")
	assert.Contains(t, rendered, "brew cleanup -s && brew doctor")
}
