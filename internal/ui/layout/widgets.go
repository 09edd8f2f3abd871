// Package layout provides the size and offset calculations behind the
// collapsible two-pane split, plus the drag state machine that turns mouse
// movement into pane sizes. It has no terminal dependencies beyond the
// Panel abstraction, so every calculation is unit-testable.
package layout

// Orientation represents the direction of the separator between the panes.
type Orientation int

// Orientation constants. The zero value is vertical: a vertical separator
// with the panes laid out side by side as columns.
const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// String returns the config spelling of the orientation.
func (o Orientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation converts a config string into an Orientation.
// Unknown values fall back to vertical.
func ParseOrientation(s string) Orientation {
	if s == "horizontal" {
		return OrientationHorizontal
	}
	return OrientationVertical
}

// Axis picks the coordinate that runs across the separator:
// x for vertical separators, y for horizontal ones.
func (o Orientation) Axis(x, y int) int {
	if o == OrientationHorizontal {
		return y
	}
	return x
}

// Panel is one child of the split. Implementations render themselves into
// exactly the size they were last given.
type Panel interface {
	// SetSize is called whenever the allocated cell size changes.
	SetSize(width, height int)
	// View renders the panel content.
	View() string
}
