package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/brewdeck/brewdeck/internal/audit"
	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/brewdeck/brewdeck/internal/plan"
	"github.com/spf13/cobra"
)

var (
	auditDryRun bool
	auditYes    bool
	auditSwap   string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit installed packages and run a synchronization plan",
	Long: `Scan installed formulae and casks, correlate pre-release variants,
and rank every package by priority. The resulting plan (refresh,
upgrade, swap, cleanup, doctor) is shown verbatim before anything runs.`,
	Run: runAudit,
}

func init() {
	auditCmd.Flags().BoolVarP(&auditDryRun, "dry-run", "n", false, "Show the plan without executing it")
	auditCmd.Flags().BoolVarP(&auditYes, "yes", "y", false, "Apply upgrades and run the plan without prompting")
	auditCmd.Flags().StringVar(&auditSwap, "swap", "", "Swap selection without prompting: \"all\", \"none\", or space-separated names")

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		os.Exit(1)
	}
	s.DryRun = auditDryRun
	s.AssumeYes = auditYes
	s.SwapPreset = auditSwap

	if !s.DryRun {
		if err := logger.Default().EnableFileLogging(); err != nil {
			logger.Warn("file logging unavailable: %v", err)
		}
		defer logger.Default().Close()
	}

	if err := runAuditSession(cmd.Context(), s); err != nil {
		if errors.Is(err, console.ErrAborted) {
			output.PrintWarning("Aborted")
			return
		}
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// runAuditSession drives one audit round trip: ledger, decisions, plan,
// execution. Shared between the audit command and the interactive menu.
func runAuditSession(ctx context.Context, s *console.Session) error {
	path, err := audit.QualifiersPath()
	if err != nil {
		return err
	}
	vocab, err := audit.LoadVocabulary(path)
	if err != nil {
		return err
	}

	output.PrintInfo("Scanning installed packages")
	ledger, err := audit.NewAuditor(s.Brew, vocab).BuildLedger(ctx)
	if err != nil {
		return err
	}
	if len(ledger) == 0 {
		output.PrintWarning("No installed packages found")
	}
	logger.Debug("ledger built: %d record(s), %d outdated, %d swappable",
		len(ledger), len(ledger.Outdated()), len(ledger.Swappable()))
	displayLedger(s.Out, ledger)

	opts := plan.Options{Greedy: s.Config.Brew.GreedyUpgrade}
	if opts.ApplyUpgrades, err = decideUpgrades(s, ledger); err != nil {
		return err
	}
	if opts.Swaps, err = decideSwaps(s, ledger); err != nil {
		return err
	}

	p := plan.Build(ledger, opts)
	runner := plan.NewExecutor(s.Exec, s.Out)

	fmt.Fprintln(s.Out)
	output.Header.Fprintln(s.Out, "Plan:")
	fmt.Fprintln(s.Out, "  "+output.Command.Sprint(runner.DryRun(p)))

	if s.DryRun {
		output.PrintInfo("Dry run: nothing was executed")
		return nil
	}

	proceed := s.AssumeYes
	if !proceed {
		if err := s.UI.Confirm("Run this plan now?", &proceed); err != nil {
			return err
		}
	}
	if !proceed {
		output.PrintInfo("Plan discarded")
		return nil
	}

	logger.Info("executing plan: %d step(s)", p.Len())
	results, err := runner.Run(ctx, p)
	reportResults(s.Out, results)
	if err == nil {
		output.PrintSuccess("Plan completed")
	}
	return err
}

// displayLedger renders the ranked ledger, one colored row per package.
func displayLedger(w io.Writer, ledger audit.Ledger) {
	table := output.NewTable("PACKAGE", "KIND", "LOCAL", "STABLE", "STATUS", "PRE-RELEASE")
	for _, r := range ledger {
		pre := ""
		if r.HasPreRelease() {
			pre = fmt.Sprintf("%s (%s)", r.PreReleaseName, output.Truncate(r.PreReleaseVersion, output.MaxVersionWidth))
		}
		table.AddRow(output.TierColor(int(r.Priority)).Sprintf,
			r.Name,
			string(r.Kind),
			output.Truncate(r.LocalVersion, output.MaxVersionWidth),
			output.Truncate(r.StableVersion, output.MaxVersionWidth),
			r.Priority.String(),
			pre)
	}

	fmt.Fprintln(w)
	table.Render(w)
	fmt.Fprintln(w)
}

// decideUpgrades asks whether the batched upgrade step should be
// included. Skipped entirely when nothing is outdated.
func decideUpgrades(s *console.Session, ledger audit.Ledger) (bool, error) {
	outdated := ledger.Outdated()
	if len(outdated) == 0 {
		return false, nil
	}
	if s.AssumeYes {
		return true, nil
	}

	apply := false
	title := fmt.Sprintf("Upgrade %d outdated package(s)?", len(outdated))
	if err := s.UI.Confirm(title, &apply); err != nil {
		return false, err
	}
	return apply, nil
}

// decideSwaps picks which correlated packages move to their pre-release
// variants. A non-interactive preset wins over the prompt; --yes alone
// swaps nothing, since replacing a package needs an explicit selection.
func decideSwaps(s *console.Session, ledger audit.Ledger) (plan.Selection, error) {
	swappable := ledger.Swappable()
	if len(swappable) == 0 {
		return plan.Selection{}, nil
	}
	if s.SwapPreset != "" || s.AssumeYes {
		return plan.ParseSelection(s.SwapPreset), nil
	}

	options := make([]string, len(swappable))
	for i, r := range swappable {
		options[i] = r.Name
	}
	var selected []string
	if err := s.UI.MultiSelect("Swap to pre-release variants", options, &selected); err != nil {
		return plan.Selection{}, err
	}
	return plan.SelectionOf(selected...), nil
}

// reportResults summarizes per-step outcomes after a live run.
func reportResults(w io.Writer, results []plan.StepResult) {
	fmt.Fprintln(w)
	for _, res := range results {
		switch {
		case res.Err == nil:
			output.Success.Fprintf(w, "✓ %s (%s)\n", res.Step.Name, res.Duration.Round(time.Millisecond))
		case res.Step.NonFatal:
			output.Warning.Fprintf(w, "⚠ %s exited %d (advisory)\n", res.Step.Name, res.ExitCode)
		default:
			output.Error.Fprintf(w, "✗ %s exited %d\n", res.Step.Name, res.ExitCode)
		}
	}
}
