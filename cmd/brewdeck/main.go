package main

import (
	"fmt"
	"os"

	"github.com/brewdeck/brewdeck/internal/brew"
	"github.com/brewdeck/brewdeck/internal/common/config"
	"github.com/brewdeck/brewdeck/internal/common/logger"
	"github.com/brewdeck/brewdeck/internal/common/output"
	"github.com/brewdeck/brewdeck/internal/common/version"
	"github.com/brewdeck/brewdeck/internal/console"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	noColor    bool
	forceColor bool
)

var rootCmd = &cobra.Command{
	Use:   "brewdeck",
	Short: "Homebrew operator console",
	Long: `An operator console for Homebrew: audit installed packages against
their stable and pre-release channels, then review and run a
synchronization plan. Run without arguments for the interactive menu.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		} else if forceColor {
			output.ForceColor()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "Force colored output even when not a terminal")

	rootCmd.AddCommand(versionCmd)
}

// newSession loads the configuration, wires the brew executor, and
// verifies the binary is reachable before any tool runs. A missing
// binary is the one fatal precondition of every command.
func newSession() (*console.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config: %v", err)
		return nil, err
	}

	runner := brew.NewRunner(cfg.Brew.Binary)
	if err := runner.Check(); err != nil {
		output.PrintError("%v", err)
		output.Box("Install Homebrew", brew.InstallHint)
		return nil, err
	}

	return &console.Session{
		Brew:   brew.NewClient(runner),
		Exec:   runner,
		UI:     console.NewHuhUI(),
		Config: cfg,
		Out:    os.Stdout,
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
