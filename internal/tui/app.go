// Package tui provides the terminal user interface for medtrack.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medtrack/internal/controller"
	"medtrack/internal/medication"
	"medtrack/internal/service"
	"medtrack/internal/tui/keys"
	"medtrack/internal/tui/styles"
)

const (
	minAppWidth  = 30
	minAppHeight = 10
)

// App is the main application model.
type App struct {
	ctx   context.Context
	ctrl  *controller.Controller
	keys  keys.KeyMap
	theme styles.Theme

	sub  service.Subscription
	list listModel
	form formModel

	width    int
	height   int
	busy     bool
	status   string
	quitting bool
}

// New creates the application model. The theme starts dark until the stored
// preference is loaded.
func New(ctx context.Context, ctrl *controller.Controller) App {
	return App{
		ctx:   ctx,
		ctrl:  ctrl,
		keys:  keys.DefaultKeyMap(),
		theme: styles.For(service.DefaultDarkMode),
	}
}

// Init opens the live record list and loads the theme.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.subscribe(),
		a.loadTheme(),
	)
}

func (a App) subscribe() tea.Cmd {
	return func() tea.Msg {
		sub, err := a.ctrl.Subscribe(a.ctx)
		return subscribedMsg{Sub: sub, Err: err}
	}
}

func (a App) loadTheme() tea.Cmd {
	return func() tea.Msg {
		dark, err := a.ctrl.DarkMode(a.ctx)
		return ThemeMsg{Dark: dark, Err: err}
	}
}

func (a App) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		dark, err := a.ctrl.ToggleTheme(a.ctx)
		return ThemeMsg{Dark: dark, Err: err}
	}
}

func (a App) submit() tea.Cmd {
	return func() tea.Msg {
		return SubmittedMsg{Err: a.ctrl.Submit(a.ctx)}
	}
}

func (a App) deleteRecord(r medication.Record) tea.Cmd {
	return func() tea.Msg {
		return DeletedMsg{Record: r, Err: a.ctrl.Delete(a.ctx, r)}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height-6)
		if a.ctrl.State().Screen == controller.ScreenEditing {
			a.form.SetWidth(msg.Width)
		}
		return a, nil

	case subscribedMsg:
		if msg.Err != nil {
			a.status = "Could not load medications: " + msg.Err.Error()
			return a, nil
		}
		a.sub = msg.Sub
		return a, WaitForRecords(a.sub.Updates())

	case RecordsMsg:
		a.list.SetRecords(msg.Records)
		return a, WaitForRecords(a.sub.Updates())

	case SubscriptionClosedMsg:
		a.sub = nil
		return a, nil

	case ThemeMsg:
		a.busy = false
		a.theme = styles.For(msg.Dark)
		if msg.Err != nil {
			a.status = "Theme preference unavailable: " + msg.Err.Error()
		}
		return a, nil

	case SubmittedMsg:
		a.busy = false
		if msg.Err != nil {
			a.form.hint = submitHint(msg.Err)
			return a, nil
		}
		a.form = formModel{}
		a.status = "Saved"
		return a, nil

	case DeletedMsg:
		a.busy = false
		if msg.Err != nil {
			a.status = "Delete failed: " + msg.Err.Error()
			return a, nil
		}
		a.status = "Deleted " + msg.Record.Name
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a.quit()
		}
		if a.busy {
			return a, nil
		}
		if a.ctrl.State().Screen == controller.ScreenEditing {
			return a.updateForm(msg)
		}
		return a.updateList(msg)
	}

	if a.ctrl.State().Screen == controller.ScreenEditing {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	if a.sub != nil {
		a.sub.Close()
	}
	return a, tea.Quit
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()

	case key.Matches(msg, a.keys.Up):
		a.list.CursorUp()

	case key.Matches(msg, a.keys.Down):
		a.list.CursorDown()

	case key.Matches(msg, a.keys.Add):
		if err := a.ctrl.RequestAdd(); err != nil {
			return a, nil
		}
		return a.openForm()

	case key.Matches(msg, a.keys.Edit):
		r, ok := a.list.Selected()
		if !ok {
			return a, nil
		}
		if err := a.ctrl.RequestEdit(r); err != nil {
			return a, nil
		}
		return a.openForm()

	case key.Matches(msg, a.keys.Delete):
		r, ok := a.list.Selected()
		if !ok {
			return a, nil
		}
		a.busy = true
		return a, a.deleteRecord(r)

	case key.Matches(msg, a.keys.Theme):
		a.busy = true
		return a, a.toggleTheme()
	}
	return a, nil
}

// openForm seeds the form from the controller's draft.
func (a App) openForm() (tea.Model, tea.Cmd) {
	a.form = newForm(a.ctrl.State().Draft)
	if a.width > 0 {
		a.form.SetWidth(a.width)
	}
	return a, a.form.setFocus(fieldName)
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		_ = a.ctrl.Cancel()
		a.form = formModel{}
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		draft := a.form.Draft()
		if err := a.ctrl.SetDraft(draft); err != nil {
			return a, nil
		}
		if err := draft.Validate(); err != nil {
			a.form.hint = submitHint(err)
			return a, nil
		}
		a.form.hint = ""
		a.busy = true
		return a, a.submit()

	case key.Matches(msg, a.keys.Next):
		return a, a.form.NextField()

	case key.Matches(msg, a.keys.Prev):
		return a, a.form.PrevField()

	case a.form.focus == fieldFrequency && key.Matches(msg, a.keys.Frequency):
		a.form.ToggleFrequency()
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// submitHint turns a submit error into the line shown under the form.
func submitHint(err error) string {
	var vErr *medication.ValidationError
	switch {
	case errors.As(err, &vErr):
		return fieldHint(vErr.Field) + " is required"
	case errors.Is(err, medication.ErrNotFound):
		return "This medication no longer exists"
	default:
		return "Could not save: " + err.Error()
	}
}

func fieldHint(field string) string {
	switch field {
	case "name":
		return fieldLabels[fieldName]
	case "start_date":
		return fieldLabels[fieldStartDate]
	case "time":
		return fieldLabels[fieldTime]
	case "frequency":
		return fieldLabels[fieldFrequency]
	}
	return field
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if a.width > 0 && (a.width < minAppWidth || a.height < minAppHeight) {
		return "Window too small"
	}

	state := a.ctrl.State()

	var title, body string
	var help []key.Binding
	switch state.Screen {
	case controller.ScreenEditing:
		title = "Edit medication"
		if state.Adding() {
			title = "New medication"
		}
		body = a.form.View(a.theme)
		help = a.keys.FormHelp()
	default:
		title = "Medications"
		body = a.list.View(a.theme)
		help = a.keys.ListHelp()
	}

	sections := []string{
		a.theme.Title.Render(title),
		body,
	}
	if a.status != "" {
		sections = append(sections, a.theme.HelpDesc.Render(a.status))
	}
	sections = append(sections, a.helpView(help))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a App) helpView(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, a.theme.HelpKey.Render(h.Key)+" "+a.theme.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
