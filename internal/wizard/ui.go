package wizard

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/terminal"
)

// UI defines the interaction methods used by the wizard.
type UI interface {
	Select(title string, options []string, current *string) error
	Input(title string, value *string, validate func(string) error) error
	Confirm(title string, value *bool) error
	Note(title string, body string) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by key filter during form.Run(); reset before each form
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a new HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.WizardRequiresTerminal)
}

// wizardKeyMap returns the wizard form keymap. Esc triggers form abort
// (mapped to back navigation) and Ctrl+C triggers form abort (mapped to hard
// exit); runForm distinguishes them via the ctrlCAbort flag.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	// Filtering is disabled: the choice lists are short and filter mode
	// would conflict with Esc-to-back since the form intercepts Esc first.
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)

	return km
}

// formFilter sets ctrlCAbort on Ctrl+C key events and converts InterruptMsg
// into QuitMsg so bubbletea takes the graceful shutdown path and clears the
// form output.
func (ui *HuhUI) formFilter() func(tea.Model, tea.Msg) tea.Msg {
	return func(_ tea.Model, msg tea.Msg) tea.Msg {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			ui.ctrlCAbort = true
		}
		if _, ok := msg.(tea.InterruptMsg); ok {
			return tea.QuitMsg{}
		}
		return msg
	}
}

// runForm validates terminal availability and runs the provided form.
// Esc returns errBack; Ctrl+C returns errCancelled.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	ui.ctrlCAbort = false
	form.WithKeyMap(wizardKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithReportFocus(),
		tea.WithFilter(ui.formFilter()),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		if ui.ctrlCAbort {
			return errCancelled
		}
		return errBack
	}
	return err
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, current *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(current),
		),
	))
}

// Input renders a text input prompt with optional validation.
func (ui *HuhUI) Input(title string, value *string, validate func(string) error) error {
	input := huh.NewInput().
		Title(title).
		Value(value)
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(input)))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	))
}

// Note renders an informational note screen.
func (ui *HuhUI) Note(title string, body string) error {
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(body),
		),
	))
}
