package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"medtrack/internal/medication"
	"medtrack/internal/service"
)

// subscribedMsg is sent once the live record list is open.
type subscribedMsg struct {
	Sub service.Subscription
	Err error
}

// RecordsMsg carries the latest ordered record list.
type RecordsMsg struct {
	Records []medication.Record
}

// SubscriptionClosedMsg is sent when the live record list ends.
type SubscriptionClosedMsg struct{}

// ThemeMsg reports the theme flag after a load or toggle.
type ThemeMsg struct {
	Dark bool
	Err  error
}

// SubmittedMsg is sent when a form submission finishes.
type SubmittedMsg struct {
	Err error
}

// DeletedMsg is sent when a delete finishes.
type DeletedMsg struct {
	Record medication.Record
	Err    error
}

// WaitForRecords returns a command that waits for the next record list.
// If newer lists are already queued, only the newest is delivered.
func WaitForRecords(updates <-chan []medication.Record) tea.Cmd {
	return func() tea.Msg {
		records, ok := <-updates
		if !ok {
			return SubscriptionClosedMsg{}
		}
		for {
			select {
			case next, ok := <-updates:
				if !ok {
					return RecordsMsg{Records: records}
				}
				records = next
			default:
				return RecordsMsg{Records: records}
			}
		}
	}
}
