package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Success     lipgloss.AdaptiveColor
	Error       lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarBadge lipgloss.Style

	Pane      lipgloss.Style
	PaneTitle lipgloss.Style
	Footer    lipgloss.Style

	ListItem    lipgloss.Style
	ListItemSel lipgloss.Style
	ListMeta    lipgloss.Style

	Label    lipgloss.Style
	Value    lipgloss.Style
	Hint     lipgloss.Style
	ErrText  lipgloss.Style
	OkText   lipgloss.Style
	Bar      lipgloss.Style
	BarLabel lipgloss.Style
}

func NewTheme() Theme {
	if os.Getenv("GYMTRACK_NO_COLOR") == "1" {
		return newNoColorTheme()
	}

	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#c7c7c7"},
		Accent:      lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#7aa2ff"},
		Success:     lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#46d1b7"},
		Error:       lipgloss.AdaptiveColor{Light: "#b42318", Dark: "#ff7a7a"},
		Border:      lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#3a3a3a"},
	}
	t.applyStyles()
	return t
}

func newNoColorTheme() Theme {
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#333333", Dark: "#dddddd"},
		Accent:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		Success:     lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		Error:       lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"},
		Border:      lipgloss.AdaptiveColor{Light: "#555555", Dark: "#777777"},
	}
	t.applyStyles()
	return t
}

func (t *Theme) applyStyles() {
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.ListItem = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.ListItemSel = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.ListMeta = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Label = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.Value = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.Hint = lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)
	t.ErrText = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	t.OkText = lipgloss.NewStyle().Foreground(t.Success)
	t.Bar = lipgloss.NewStyle().Foreground(t.Accent)
	t.BarLabel = lipgloss.NewStyle().Foreground(t.TextMuted)
}
