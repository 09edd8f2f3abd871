package model

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/collapsepane/internal/cli/styles"
)

// ViewportPanel is a titled, scrollable panel for one side of the split.
type ViewportPanel struct {
	title    string
	theme    *styles.Theme
	viewport viewport.Model
	width    int
	height   int
}

// NewViewportPanel creates a panel showing content under title.
func NewViewportPanel(theme *styles.Theme, title, content string) *ViewportPanel {
	vp := viewport.New(0, 0)
	vp.Style = theme.PaneBody
	vp.SetContent(content)
	return &ViewportPanel{title: title, theme: theme, viewport: vp}
}

// SetSize implements layout.Panel. The first row holds the title.
func (p *ViewportPanel) SetSize(width, height int) {
	p.width, p.height = width, height
	p.viewport.Width = width
	p.viewport.Height = max(height-1, 0)
}

// View implements layout.Panel.
func (p *ViewportPanel) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}
	title := ansi.Truncate(p.theme.PaneTitle.Render(p.title), p.width, "…")
	if p.height == 1 {
		return title
	}
	return title + "\n" + p.viewport.View()
}

// Size returns the size last given by the split.
func (p *ViewportPanel) Size() (width, height int) {
	return p.width, p.height
}

// ScrollDown scrolls the content by n lines.
func (p *ViewportPanel) ScrollDown(n int) {
	p.viewport.LineDown(n)
}

// ScrollUp scrolls the content by n lines.
func (p *ViewportPanel) ScrollUp(n int) {
	p.viewport.LineUp(n)
}
