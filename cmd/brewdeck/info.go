package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/brewdeck/brewdeck/internal/brew"
	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show details for a formula or cask",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	s, err := newSession()
	if err != nil {
		os.Exit(1)
	}
	if err := runInfoSession(cmd.Context(), s, args[0]); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// runInfoSession shows the structured info panels for a name. When the
// JSON lookup fails, the raw text output is shown instead so the
// operator still gets something useful.
func runInfoSession(ctx context.Context, s *console.Session, name string) error {
	doc, err := s.Brew.Info(ctx, name)
	if err != nil {
		text, textErr := s.Brew.InfoText(ctx, name)
		if textErr != nil {
			return err
		}
		fmt.Fprintln(s.Out, text)
		return nil
	}

	if len(doc.Formulae) == 0 && len(doc.Casks) == 0 {
		output.PrintWarning("No package named %q", name)
		return nil
	}

	for _, f := range doc.Formulae {
		printFormula(s.Out, f)
	}
	for _, c := range doc.Casks {
		printCask(s.Out, c)
	}
	return nil
}

func printFormula(w io.Writer, f brew.Formula) {
	output.Package.Fprint(w, f.Name)
	fmt.Fprintf(w, " (formula) %s\n", f.Versions.Stable)
	if f.Desc != "" {
		fmt.Fprintln(w, "  "+f.Desc)
	}
	if f.Homepage != "" {
		output.Dim.Fprintln(w, "  "+f.Homepage)
	}
	if f.License != "" {
		output.Dim.Fprintln(w, "  license: "+f.License)
	}
	if len(f.Installed) > 0 {
		fmt.Fprintf(w, "  installed: %s\n", f.Installed[0].Version)
	}
	if f.Outdated {
		output.Warning.Fprintln(w, "  outdated")
	}
}

func printCask(w io.Writer, c brew.Cask) {
	output.Package.Fprint(w, c.Token)
	fmt.Fprintf(w, " (cask) %s\n", c.Version)
	if len(c.Names) > 0 {
		fmt.Fprintln(w, "  "+c.Names[0])
	}
	if c.Desc != "" {
		fmt.Fprintln(w, "  "+c.Desc)
	}
	if c.Homepage != "" {
		output.Dim.Fprintln(w, "  "+c.Homepage)
	}
	if c.Installed != "" {
		fmt.Fprintf(w, "  installed: %s\n", c.Installed)
	}
	if c.Outdated {
		output.Warning.Fprintln(w, "  outdated")
	}
}
