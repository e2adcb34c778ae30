package console

import (
	"io"

	"github.com/brewdeck/brewdeck/internal/brew"
	"github.com/brewdeck/brewdeck/internal/common/config"
)

// Session is the explicit per-session context passed to each tool.
// It is created at session start, discarded at session end, and holds
// no data that survives across sessions.
type Session struct {
	// Brew is the inventory client for the session
	Brew *brew.Client
	// Exec is the underlying brew executor, shared with the plan runner
	Exec brew.Executor
	// UI is the operator prompt surface
	UI UI
	// Config is the loaded application configuration
	Config *config.Config
	// Out is where tools write their display output
	Out io.Writer

	// DryRun suppresses plan execution entirely
	DryRun bool
	// AssumeYes answers confirmation prompts affirmatively, for
	// non-interactive use
	AssumeYes bool
	// SwapPreset is a non-interactive swap selection ("all", "none",
	// or space-separated names); empty means prompt the operator
	SwapPreset string
}
