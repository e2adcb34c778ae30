package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/brewdeck/brewdeck/internal/registry"
	"github.com/spf13/cobra"
)

const (
	quitLabel = "Quit"
	backLabel = "Back"
)

func init() {
	// Running brewdeck with no subcommand opens the interactive menu.
	rootCmd.Run = runMenu
}

// menuRegistry returns the static tool table shown in the menu.
func menuRegistry() *registry.Registry {
	return registry.New(
		auditTool{},
		searchTool{},
		infoTool{},
		topTool{},
	)
}

func runMenu(cmd *cobra.Command, args []string) {
	if !output.IsTerminal() {
		logger.Error("the interactive menu requires a terminal; use the subcommands instead")
		os.Exit(1)
	}

	s, err := newSession()
	if err != nil {
		os.Exit(1)
	}

	reg := menuRegistry()
	labels := make([]string, 0, reg.Len()+1)
	byLabel := make(map[string]registry.Tool, reg.Len())
	for _, t := range reg.All() {
		m := t.Meta()
		label := fmt.Sprintf("%s: %s", m.Name, m.Description)
		labels = append(labels, label)
		byLabel[label] = t
	}
	labels = append(labels, quitLabel)

	for {
		choice := labels[0]
		if err := s.UI.Select("brewdeck", labels, &choice); err != nil {
			if errors.Is(err, console.ErrAborted) {
				return
			}
			logger.Error("%v", err)
			os.Exit(1)
		}
		if choice == quitLabel {
			return
		}

		// A failing tool ends its round, not the console.
		if err := byLabel[choice].Run(cmd.Context(), s); err != nil {
			if errors.Is(err, console.ErrAborted) {
				output.PrintWarning("Aborted")
				continue
			}
			output.PrintError("%v", err)
		}
	}
}

// pickPackageInfo offers a drill-down from a result list into the info
// view for one chosen package.
func pickPackageInfo(ctx context.Context, s *console.Session, names []string) error {
	options := make([]string, 0, len(names)+1)
	options = append(options, names...)
	options = append(options, backLabel)

	choice := backLabel
	if err := s.UI.Select("Show details for", options, &choice); err != nil {
		return err
	}
	if choice == backLabel {
		return nil
	}
	return runInfoSession(ctx, s, choice)
}

type auditTool struct{}

func (auditTool) Meta() registry.Meta {
	return registry.Meta{
		Name:        "Audit",
		Description: "scan packages, review the ledger, run a plan",
		Order:       1,
	}
}

func (auditTool) Run(ctx context.Context, s *console.Session) error {
	return runAuditSession(ctx, s)
}

type searchTool struct{}

func (searchTool) Meta() registry.Meta {
	return registry.Meta{
		Name:        "Search",
		Description: "find packages by name",
		Order:       2,
	}
}

func (searchTool) Run(ctx context.Context, s *console.Session) error {
	var query string
	if err := s.UI.Input("Search for", &query); err != nil {
		return err
	}
	names, err := runSearchSession(ctx, s, query)
	if err != nil || len(names) == 0 {
		return err
	}
	return pickPackageInfo(ctx, s, names)
}

type infoTool struct{}

func (infoTool) Meta() registry.Meta {
	return registry.Meta{
		Name:        "Info",
		Description: "show details for a formula or cask",
		Order:       3,
	}
}

func (infoTool) Run(ctx context.Context, s *console.Session) error {
	var name string
	if err := s.UI.Input("Package name", &name); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return runInfoSession(ctx, s, name)
}

type topTool struct{}

func (topTool) Meta() registry.Meta {
	return registry.Meta{
		Name:        "Top installs",
		Description: "most installed packages, last 30 days",
		Order:       4,
	}
}

func (topTool) Run(ctx context.Context, s *console.Session) error {
	names, err := runTopSession(ctx, s)
	if err != nil || len(names) == 0 {
		return err
	}
	return pickPackageInfo(ctx, s, names)
}
