package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"medtrack/internal/medication"
	"medtrack/internal/tui/styles"
)

// Form focus slots, in tab order.
const (
	fieldName = iota
	fieldStartDate
	fieldTime
	fieldFrequency
	fieldEndDate
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:        "Name",
	fieldStartDate:   "Start date",
	fieldTime:        "Time",
	fieldFrequency:   "Frequency",
	fieldEndDate:     "End date",
	fieldDescription: "Description",
}

// formModel edits a medication.Draft.
type formModel struct {
	inputs      [fieldCount]textinput.Model // text slots only
	description textarea.Model
	frequency   medication.Frequency
	focus       int
	width       int
	hint        string
}

// newTextInput creates an unlimited single-line input; every field is free text.
func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = 40
	return ti
}

// isText reports whether slot i is a single-line text input.
func isText(i int) bool {
	return i != fieldFrequency && i != fieldDescription
}

// newForm creates a form seeded from d with focus on the name field.
func newForm(d medication.Draft) formModel {
	f := formModel{
		description: textarea.New(),
		frequency:   d.Frequency,
	}
	f.inputs[fieldName] = newTextInput("Paracetamol")
	f.inputs[fieldStartDate] = newTextInput("DD/MM/YYYY")
	f.inputs[fieldTime] = newTextInput("HH:MM")
	f.inputs[fieldEndDate] = newTextInput("DD/MM/YYYY (optional)")
	f.inputs[fieldName].SetValue(d.Name)
	f.inputs[fieldStartDate].SetValue(d.StartDate)
	f.inputs[fieldTime].SetValue(d.Time)
	f.inputs[fieldEndDate].SetValue(d.EndDate)

	f.description.Placeholder = "Notes, Markdown allowed (optional)"
	f.description.ShowLineNumbers = false
	f.description.CharLimit = 0
	f.description.SetHeight(4)
	f.description.SetWidth(40)
	f.description.SetValue(d.Description)

	if !f.frequency.Valid() {
		f.frequency = medication.FrequencyDaily
	}
	f.setFocus(fieldName)
	return f
}

// Draft returns the form contents.
func (f formModel) Draft() medication.Draft {
	return medication.Draft{
		Name:        f.inputs[fieldName].Value(),
		StartDate:   f.inputs[fieldStartDate].Value(),
		Time:        f.inputs[fieldTime].Value(),
		Frequency:   f.frequency,
		EndDate:     f.inputs[fieldEndDate].Value(),
		Description: f.description.Value(),
	}
}

// SetWidth resizes the inputs.
func (f *formModel) SetWidth(width int) {
	f.width = width
	inner := max(width-8, 20)
	for i := range f.inputs {
		f.inputs[i].Width = inner
	}
	f.description.SetWidth(inner)
}

// setFocus moves focus to slot i and returns the blink command of the focused widget.
func (f *formModel) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	for i := range f.inputs {
		if isText(i) && i != f.focus {
			f.inputs[i].Blur()
		}
	}
	f.description.Blur()

	switch {
	case f.focus == fieldDescription:
		return f.description.Focus()
	case isText(f.focus):
		return f.inputs[f.focus].Focus()
	}
	return nil
}

// NextField moves focus forward.
func (f *formModel) NextField() tea.Cmd {
	return f.setFocus(f.focus + 1)
}

// PrevField moves focus backward.
func (f *formModel) PrevField() tea.Cmd {
	return f.setFocus(f.focus - 1)
}

// ToggleFrequency switches between the two frequency tags.
func (f *formModel) ToggleFrequency() {
	if f.frequency == medication.FrequencyDaily {
		f.frequency = medication.FrequencyLimited
	} else {
		f.frequency = medication.FrequencyDaily
	}
}

// Update forwards msg to the focused widget.
func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case f.focus == fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case isText(f.focus):
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return f, cmd
}

// View renders the form.
func (f formModel) View(theme styles.Theme) string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := theme.Label
		box := theme.Input
		if i == f.focus {
			label = theme.LabelFocused
			box = theme.InputFocused
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString("\n")

		switch i {
		case fieldFrequency:
			b.WriteString(f.frequencyView(theme))
		case fieldDescription:
			b.WriteString(box.Render(f.description.View()))
		default:
			b.WriteString(box.Render(f.inputs[i].View()))
		}
		b.WriteString("\n")
	}
	if f.hint != "" {
		b.WriteString(theme.Error.Render(f.hint))
		b.WriteString("\n")
	}
	return b.String()
}

func (f formModel) frequencyView(theme styles.Theme) string {
	options := []medication.Frequency{medication.FrequencyDaily, medication.FrequencyLimited}
	rendered := make([]string, 0, len(options))
	for _, opt := range options {
		style := theme.Option
		if opt == f.frequency {
			style = theme.OptionActive
		}
		rendered = append(rendered, style.Render(opt.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
