// Package styles defines the dark and light palettes for the medtrack TUI.
// Dark uses Catppuccin Mocha, light uses Catppuccin Latte.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Danger  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
}

// Mocha is the dark palette.
var Mocha = Palette{
	Primary: lipgloss.Color("#CBA6F7"),
	Accent:  lipgloss.Color("#74C7EC"),
	Danger:  lipgloss.Color("#F38BA8"),
	Text:    lipgloss.Color("#CDD6F4"),
	Muted:   lipgloss.Color("#6C7086"),
	Surface: lipgloss.Color("#313244"),
	Border:  lipgloss.Color("#45475A"),
}

// Latte is the light palette.
var Latte = Palette{
	Primary: lipgloss.Color("#8839EF"),
	Accent:  lipgloss.Color("#209FB5"),
	Danger:  lipgloss.Color("#D20F39"),
	Text:    lipgloss.Color("#4C4F69"),
	Muted:   lipgloss.Color("#8C8FA1"),
	Surface: lipgloss.Color("#CCD0DA"),
	Border:  lipgloss.Color("#BCC0CC"),
}

// Theme holds the styles used by every screen.
type Theme struct {
	Dark bool

	Title        lipgloss.Style
	Frame        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Detail       lipgloss.Style
	Summary      lipgloss.Style
	Empty        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Option       lipgloss.Style
	OptionActive lipgloss.Style
	Error        lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// For returns the dark or light theme.
func For(dark bool) Theme {
	if dark {
		return build(Mocha, true)
	}
	return build(Latte, false)
}

func build(p Palette, dark bool) Theme {
	return Theme{
		Dark: dark,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Padding(0, 1).
			MarginBottom(1),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(p.Text).
			PaddingLeft(2),

		ItemSelected: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Primary).
			PaddingLeft(1),

		Detail: lipgloss.NewStyle().
			Foreground(p.Accent),

		Summary: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Padding(1, 2),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted),

		LabelFocused: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),

		Option: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		OptionActive: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Bold(true).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(p.Danger).
			Bold(true),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}
