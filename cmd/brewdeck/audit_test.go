package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brewdeck/brewdeck/internal/audit"
	"github.com/brewdeck/brewdeck/internal/brew"
	"github.com/brewdeck/brewdeck/internal/common/config"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/brewdeck/brewdeck/internal/plan"
)

// fakeUI answers every prompt from canned values and records the titles
// it was asked, so tests can assert which prompts fired.
type fakeUI struct {
	confirm  bool
	choice   string
	selected []string
	input    string
	prompts  []string
}

func (f *fakeUI) Select(title string, options []string, choice *string) error {
	f.prompts = append(f.prompts, title)
	if f.choice != "" {
		*choice = f.choice
	} else if len(options) > 0 {
		*choice = options[0]
	}
	return nil
}

func (f *fakeUI) MultiSelect(title string, options []string, selected *[]string) error {
	f.prompts = append(f.prompts, title)
	*selected = f.selected
	return nil
}

func (f *fakeUI) Confirm(title string, value *bool) error {
	f.prompts = append(f.prompts, title)
	*value = f.confirm
	return nil
}

func (f *fakeUI) Input(title string, value *string) error {
	f.prompts = append(f.prompts, title)
	*value = f.input
	return nil
}

var _ console.UI = (*fakeUI)(nil)

const installedFixture = `{
  "formulae": [
    {"name": "foo", "outdated": false, "versions": {"stable": "1.0"}, "installed": [{"version": "1.0"}]},
    {"name": "old", "outdated": true, "versions": {"stable": "2.0"}, "installed": [{"version": "1.0"}]}
  ],
  "casks": []
}`

const metadataFixture = `{
  "formulae": [
    {"name": "foo-beta", "versions": {"stable": "2.0b1"}}
  ],
  "casks": []
}`

// newAuditExecutor fakes the three inventory calls of one audit round.
func newAuditExecutor() *brew.MockExecutor {
	exec := brew.NewMockExecutor()
	exec.CaptureFunc = func(args ...string) (string, error) {
		switch args[0] {
		case "search":
			return "==> Formulae\nfoo-beta\n", nil
		case "info":
			for _, a := range args {
				if a == "--installed" {
					return installedFixture, nil
				}
			}
			return metadataFixture, nil
		}
		return "", nil
	}
	return exec
}

func TestDisplayLedger(t *testing.T) {
	output.NoColor()

	ledger := audit.Ledger{
		{Name: "old", Kind: brew.KindFormula, LocalVersion: "1.0", StableVersion: "2.0", Outdated: true, Priority: audit.PriorityNeedsUpdate},
		{Name: "foo", Kind: brew.KindFormula, LocalVersion: "1.0", StableVersion: "1.0", PreReleaseName: "foo-beta", PreReleaseVersion: "2.0b1", Priority: audit.PriorityPreRelease},
	}

	var buf bytes.Buffer
	displayLedger(&buf, ledger)
	got := buf.String()

	for _, want := range []string{"old", "needs update", "foo-beta (2.0b1)", "pre-release available"} {
		if !strings.Contains(got, want) {
			t.Errorf("ledger output missing %q:\n%s", want, got)
		}
	}
}

func TestDecideUpgradesSkipsPromptWithoutOutdated(t *testing.T) {
	ui := &fakeUI{confirm: true}
	s := &console.Session{UI: ui}

	apply, err := decideUpgrades(s, audit.Ledger{{Name: "foo"}})
	if err != nil {
		t.Fatalf("decideUpgrades: %v", err)
	}
	if apply {
		t.Error("nothing outdated should mean no upgrade step")
	}
	if len(ui.prompts) != 0 {
		t.Errorf("no prompt expected, got %v", ui.prompts)
	}
}

func TestDecideUpgradesAssumeYes(t *testing.T) {
	ui := &fakeUI{}
	s := &console.Session{UI: ui, AssumeYes: true}

	apply, err := decideUpgrades(s, audit.Ledger{{Name: "old", Outdated: true}})
	if err != nil {
		t.Fatalf("decideUpgrades: %v", err)
	}
	if !apply {
		t.Error("--yes should include the upgrade step")
	}
	if len(ui.prompts) != 0 {
		t.Errorf("--yes should not prompt, got %v", ui.prompts)
	}
}

func TestDecideSwapsPreset(t *testing.T) {
	ledger := audit.Ledger{{Name: "foo", PreReleaseName: "foo-beta"}}

	tests := []struct {
		name    string
		session console.Session
		wantAll bool
		empty   bool
	}{
		{name: "preset all", session: console.Session{SwapPreset: "all"}, wantAll: true},
		{name: "preset none", session: console.Session{SwapPreset: "none"}, empty: true},
		{name: "yes without preset swaps nothing", session: console.Session{AssumeYes: true}, empty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := decideSwaps(&tt.session, ledger)
			if err != nil {
				t.Fatalf("decideSwaps: %v", err)
			}
			if sel.All != tt.wantAll {
				t.Errorf("All = %v, want %v", sel.All, tt.wantAll)
			}
			if sel.Empty() != tt.empty {
				t.Errorf("Empty() = %v, want %v", sel.Empty(), tt.empty)
			}
		})
	}
}

func TestDecideSwapsPromptsWithSelection(t *testing.T) {
	ui := &fakeUI{selected: []string{"foo"}}
	s := &console.Session{UI: ui}
	ledger := audit.Ledger{
		{Name: "foo", PreReleaseName: "foo-beta"},
		{Name: "bar", PreReleaseName: "bar-nightly"},
	}

	sel, err := decideSwaps(s, ledger)
	if err != nil {
		t.Fatalf("decideSwaps: %v", err)
	}
	if len(ui.prompts) != 1 {
		t.Fatalf("expected one prompt, got %v", ui.prompts)
	}
	if !sel.Names["foo"] || sel.Names["bar"] {
		t.Errorf("selection = %+v, want exactly foo", sel)
	}
}

func TestRunAuditSessionDryRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	output.NoColor()

	exec := newAuditExecutor()
	var buf bytes.Buffer
	s := &console.Session{
		Brew:      brew.NewClient(exec),
		Exec:      exec,
		UI:        &fakeUI{},
		Config:    config.Defaults(),
		Out:       &buf,
		DryRun:    true,
		AssumeYes: true,
	}

	if err := runAuditSession(context.Background(), s); err != nil {
		t.Fatalf("runAuditSession: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "brew update && brew upgrade --greedy && brew cleanup -s && brew doctor") {
		t.Errorf("plan line missing from output:\n%s", got)
	}

	// A dry run only reads: the three inventory calls, no step execution.
	if len(exec.Calls) != 3 {
		t.Fatalf("expected 3 brew calls, got %d: %v", len(exec.Calls), exec.Calls)
	}
	for _, call := range exec.Calls {
		switch call[0] {
		case "update", "upgrade", "uninstall", "install", "cleanup", "doctor":
			t.Errorf("dry run must not execute steps, ran %v", call)
		}
	}
}

func TestRunAuditSessionDeclinedPlan(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	output.NoColor()

	exec := newAuditExecutor()
	var buf bytes.Buffer
	s := &console.Session{
		Brew:   brew.NewClient(exec),
		Exec:   exec,
		UI:     &fakeUI{confirm: false},
		Config: config.Defaults(),
		Out:    &buf,
	}

	if err := runAuditSession(context.Background(), s); err != nil {
		t.Fatalf("runAuditSession: %v", err)
	}
	for _, call := range exec.Calls {
		if call[0] == "update" {
			t.Fatal("declined plan must not execute")
		}
	}
}

func TestReportResults(t *testing.T) {
	output.NoColor()

	var buf bytes.Buffer
	reportResults(&buf, []plan.StepResult{
		{Step: plan.Step{Name: "refresh definitions"}, Duration: 120 * time.Millisecond},
		{Step: plan.Step{Name: "doctor", NonFatal: true}, ExitCode: 1, Err: errors.New("warnings")},
		{Step: plan.Step{Name: "upgrade outdated"}, ExitCode: 2, Err: errors.New("boom")},
	})

	got := buf.String()
	for _, want := range []string{"✓ refresh definitions", "⚠ doctor exited 1", "✗ upgrade outdated exited 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}
