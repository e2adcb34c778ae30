// Package console provides the operator interaction surface: prompt
// forms and the per-session context object handed to each tool.
package console

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the operator backs out of a prompt.
var ErrAborted = errors.New("aborted by operator")

// UI defines the interaction methods.
type UI interface {
	Select(title string, options []string, choice *string) error
	MultiSelect(title string, options []string, selected *[]string) error
	Confirm(title string, value *bool) error
	Input(title string, value *string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

// NewHuhUI creates a new HuhUI.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// runForm runs a single-field form, mapping a user abort to ErrAborted.
func (ui *HuhUI) runForm(form *huh.Form) error {
	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Select prompts for one option from a list.
func (ui *HuhUI) Select(title string, options []string, choice *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(choice),
		),
	))
}

// MultiSelect prompts for any number of options from a list.
func (ui *HuhUI) MultiSelect(title string, options []string, selected *[]string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Options(opts...).
				Value(selected),
		),
	))
}

// Confirm prompts for a yes/no answer.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	))
}

// Input prompts for a free-text answer.
func (ui *HuhUI) Input(title string, value *string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(value),
		),
	))
}

// Ensure HuhUI implements UI interface
var _ UI = (*HuhUI)(nil)
