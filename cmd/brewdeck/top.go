package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/brewdeck/brewdeck/internal/analytics"
	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/spf13/cobra"
)

var topLimit int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most installed packages over the last 30 days",
	Long: `Fetch the public install-count analytics feed and show the top
entries, enriched with package descriptions from brew. Advisory only;
nothing here feeds the audit.`,
	Run: runTop,
}

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", 0, "Number of entries to show (default from config)")

	rootCmd.AddCommand(topCmd)
}

func runTop(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		os.Exit(1)
	}
	if topLimit > 0 {
		s.Config.Analytics.Limit = topLimit
	}
	if _, err := runTopSession(cmd.Context(), s); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// runTopSession shows the ranked install table and returns the names so
// interactive callers can offer a drill-down into package info. The feed
// is advisory: a failed fetch degrades to an empty list with a warning.
func runTopSession(ctx context.Context, s *console.Session) ([]string, error) {
	output.PrintInfo("Fetching 30-day install analytics")
	top, err := analytics.NewClient(s.Config.Analytics.URL).TopInstalls(ctx, s.Config.Analytics.Limit)
	if err != nil {
		logger.Warn("analytics feed unavailable: %v", err)
		return nil, nil
	}
	if len(top) == 0 {
		output.PrintWarning("Analytics feed returned no entries")
		return nil, nil
	}

	names := make([]string, len(top))
	for i, p := range top {
		names[i] = p.Name
	}
	descs, err := s.Brew.FetchDescriptions(ctx, names)
	if err != nil {
		logger.Warn("descriptions unavailable: %v", err)
	}

	table := output.NewTable("#", "PACKAGE", "INSTALLS", "DESCRIPTION")
	for i, p := range top {
		table.AddRow(nil,
			strconv.Itoa(i+1),
			p.Name,
			strconv.Itoa(p.Count),
			output.Truncate(descs[p.Name], 60))
	}

	fmt.Fprintln(s.Out)
	table.Render(s.Out)
	fmt.Fprintln(s.Out)
	return names, nil
}
