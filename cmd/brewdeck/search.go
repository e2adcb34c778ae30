package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for packages by name",
	Args:  cobra.ExactArgs(1),
	Run:   runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		os.Exit(1)
	}
	if _, err := runSearchSession(cmd.Context(), s, args[0]); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// runSearchSession shows a numbered result list and returns the names so
// interactive callers can offer a drill-down into package info.
func runSearchSession(ctx context.Context, s *console.Session, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	results, err := s.Brew.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		output.PrintWarning("No matches for %q", query)
		return nil, nil
	}

	output.PrintInfo("%d match(es) for %q", len(results), query)
	for i, name := range results {
		fmt.Fprintf(s.Out, "  %2d. %s\n", i+1, name)
	}
	return results, nil
}
