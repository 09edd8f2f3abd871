package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/collapsepane/internal/ui/layout"
)

// Arrow glyphs used when no custom button is configured.
const (
	arrowLeft  = "◀"
	arrowRight = "▶"
	arrowUp    = "▲"
	arrowDown  = "▼"
)

// CollapseButton is the affordance drawn on the separator. It shows the
// expand glyph while collapsed and the collapse glyph otherwise.
type CollapseButton struct {
	Collapsed   bool
	Inverted    bool
	Orientation layout.Orientation
	// CollapseGlyph and ExpandGlyph override the default arrows when set.
	CollapseGlyph string
	ExpandGlyph   string
}

// Glyph returns the text rendered for the button's current state.
func (b CollapseButton) Glyph() string {
	if b.Collapsed {
		if b.ExpandGlyph != "" {
			return b.ExpandGlyph
		}
		return b.arrow(true)
	}
	if b.CollapseGlyph != "" {
		return b.CollapseGlyph
	}
	return b.arrow(false)
}

// arrow points towards the side that grows when the button is pressed.
func (b CollapseButton) arrow(collapsed bool) string {
	// Pressing expand grows the collapsed pane, which sits at the start
	// unless inverted. The collapse arrow points the other way.
	towardEnd := collapsed != b.Inverted
	if b.Orientation == layout.OrientationHorizontal {
		if towardEnd {
			return arrowDown
		}
		return arrowUp
	}
	if towardEnd {
		return arrowRight
	}
	return arrowLeft
}

// Width is the number of cells the glyph occupies.
func (b CollapseButton) Width() int {
	return lipgloss.Width(b.Glyph())
}

// Render draws the glyph clipped to at most width cells.
func (b CollapseButton) Render(style lipgloss.Style, width int) string {
	glyph := b.Glyph()
	if lipgloss.Width(glyph) > width {
		glyph = ansi.Truncate(glyph, width, "")
	}
	return style.Render(glyph)
}
