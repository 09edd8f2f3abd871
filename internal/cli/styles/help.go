package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DemoKeyMap defines keybindings for the split pane demo.
type DemoKeyMap struct {
	Collapse    key.Binding
	Orientation key.Binding
	Invert      key.Binding
	Grow        key.Binding
	Shrink      key.Binding
	Reset       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Collapse, k.Orientation, k.Invert, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Collapse, k.Orientation, k.Invert},
		{k.Grow, k.Shrink, k.Reset},
		{k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns the default demo keybindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		Collapse: key.NewBinding(
			key.WithKeys("c", " "),
			key.WithHelp("c", "collapse/expand"),
		),
		Orientation: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "orientation"),
		),
		Invert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invert"),
		),
		Grow: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "grow first"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "shrink first"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset sizes"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
