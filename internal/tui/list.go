package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"medtrack/internal/markdown"
	"medtrack/internal/medication"
	"medtrack/internal/tui/styles"
)

// rowHeight is the number of lines a record takes in the list.
const rowHeight = 3

// listModel renders the live record list with a cursor.
type listModel struct {
	records []medication.Record
	cursor  int
	offset  int // For scrolling
	width   int
	height  int
}

// SetSize updates the component dimensions.
func (m *listModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetRecords replaces the list, keeping the cursor on the same record when it still exists.
func (m *listModel) SetRecords(records []medication.Record) {
	var selectedID int64
	if r, ok := m.Selected(); ok {
		selectedID = r.ID
	}

	m.records = records
	m.cursor = min(m.cursor, max(len(records)-1, 0))
	for i, r := range records {
		if r.ID == selectedID {
			m.cursor = i
			break
		}
	}
	m.ensureVisible()
}

// Selected returns the record under the cursor.
func (m listModel) Selected() (medication.Record, bool) {
	if m.cursor >= 0 && m.cursor < len(m.records) {
		return m.records[m.cursor], true
	}
	return medication.Record{}, false
}

// CursorUp moves cursor up.
func (m *listModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.ensureVisible()
	}
}

// CursorDown moves cursor down.
func (m *listModel) CursorDown() {
	if m.cursor < len(m.records)-1 {
		m.cursor++
		m.ensureVisible()
	}
}

func (m *listModel) visibleRows() int {
	return max(m.height/rowHeight, 1)
}

// ensureVisible adjusts scroll offset to keep cursor visible.
func (m *listModel) ensureVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset > 0 && m.offset+visible > len(m.records) {
		m.offset = max(len(m.records)-visible, 0)
	}
}

// View renders the visible rows.
func (m listModel) View(theme styles.Theme) string {
	if len(m.records) == 0 {
		return theme.Empty.Render("No medications yet. Press a to add one.")
	}

	width := max(m.width-4, 10)
	end := min(m.offset+m.visibleRows(), len(m.records))

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			b.WriteString("\n")
		}
		b.WriteString(renderRow(m.records[i], i == m.cursor, width, theme))
	}
	return b.String()
}

// renderRow renders one record: name, dose time with frequency, description summary.
func renderRow(r medication.Record, selected bool, width int, theme styles.Theme) string {
	detail := fmt.Sprintf("%s • %s", r.Time, r.Frequency.Label())
	if r.EndDate != "" {
		detail += fmt.Sprintf(" • until %s", r.EndDate)
	}
	summary := markdown.PlainText(r.Description)

	lines := []string{
		ansi.Truncate(r.Name, width, "…"),
		theme.Detail.Render(ansi.Truncate(detail, width, "…")),
	}
	if summary != "" {
		lines = append(lines, theme.Summary.Render(ansi.Truncate(summary, width, "…")))
	} else {
		lines = append(lines, "")
	}

	style := theme.Item
	if selected {
		style = theme.ItemSelected
	}
	return style.Render(strings.Join(lines, "\n"))
}
