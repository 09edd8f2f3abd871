// Package component holds the Bubble Tea widgets built on top of the
// layout calculations.
package component

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/bnema/collapsepane/internal/logging"
	"github.com/bnema/collapsepane/internal/ui/layout"
)

// Defaults applied by DefaultProps and for zero-valued props.
const (
	DefaultSeparatorWidth       = 1
	DefaultCollapsedSize        = 10
	DefaultCollapseButtonOffset = 50

	DefaultSeparatorColor       = lipgloss.Color("#000000")
	DefaultMovingSeparatorColor = lipgloss.Color("#808080")

	buttonColor = lipgloss.Color("#ffffff")
)

// Props configure a CollapsePane. The pane is controlled: Sizes and
// Collapsed only change through SetSizes, SetCollapsed or SetProps, usually
// from inside Callbacks.
type Props struct {
	Sizes         layout.Sizes
	Collapsed     bool
	CollapsedSize int
	Orientation   layout.Orientation
	Inverted      bool

	// SeparatorWidth is in cells; zero means DefaultSeparatorWidth.
	SeparatorWidth       int
	SeparatorColor       lipgloss.Color
	MovingSeparatorColor lipgloss.Color
	// CollapseButtonOffset places the button along the separator in
	// percent, 0 at the start and 100 at the end.
	CollapseButtonOffset int

	// SnapPoints are separator positions in cells from the left or top edge.
	SnapPoints []int
	// SnapRadius of zero means layout.SnapRadius.
	SnapRadius int

	// CollapseButton and ExpandButton replace the default arrow glyphs.
	CollapseButton string
	ExpandButton   string

	Callbacks Callbacks
}

// DefaultProps returns props for an even, expanded vertical split.
func DefaultProps() Props {
	return Props{
		Sizes:                layout.Sizes{1, 1},
		CollapsedSize:        DefaultCollapsedSize,
		SeparatorWidth:       DefaultSeparatorWidth,
		SeparatorColor:       DefaultSeparatorColor,
		MovingSeparatorColor: DefaultMovingSeparatorColor,
		CollapseButtonOffset: DefaultCollapseButtonOffset,
	}
}

// CollapsePane lays out two panels around a draggable separator. It is
// meant to be embedded in a parent model that forwards messages to Update
// and places View in its own output.
type CollapsePane struct {
	props  Props
	first  layout.Panel
	second layout.Panel

	x, y          int
	width, height int
	// cells along the axis: first, separator, second
	cells [3]int

	drag      layout.Drag
	reference int

	logger *zerolog.Logger
}

// NewCollapsePane creates a pane around first and second. The logger is
// taken from ctx.
func NewCollapsePane(ctx context.Context, first, second layout.Panel, props Props) *CollapsePane {
	c := &CollapsePane{
		first:  first,
		second: second,
		logger: logging.FromContext(logging.WithComponent(ctx, "collapse_pane")),
	}
	c.SetProps(props)
	return c
}

// Props returns the current props.
func (c *CollapsePane) Props() Props {
	p := c.props
	p.SnapPoints = append([]int(nil), c.props.SnapPoints...)
	return p
}

// SetProps replaces every prop. An in-progress drag is cancelled when the
// pane becomes collapsed or changes orientation.
func (c *CollapsePane) SetProps(p Props) {
	if p.SeparatorWidth <= 0 {
		p.SeparatorWidth = DefaultSeparatorWidth
	}
	if p.SeparatorColor == "" {
		p.SeparatorColor = DefaultSeparatorColor
	}
	if p.MovingSeparatorColor == "" {
		p.MovingSeparatorColor = DefaultMovingSeparatorColor
	}
	if p.CollapsedSize < 0 {
		p.CollapsedSize = 0
	}
	p.CollapseButtonOffset = clamp(p.CollapseButtonOffset, 0, 100)
	p.SnapPoints = append([]int(nil), p.SnapPoints...)

	if c.drag.Captured() && (p.Collapsed || p.Orientation != c.props.Orientation) {
		c.drag.Cancel()
	}
	c.props = p
	c.relayout()
}

// SetSizes updates the pane weights.
func (c *CollapsePane) SetSizes(sizes layout.Sizes) {
	c.props.Sizes = sizes
	c.relayout()
}

// SetCollapsed collapses or expands the collapsing pane.
func (c *CollapsePane) SetCollapsed(collapsed bool) {
	if collapsed && c.drag.Captured() {
		c.drag.Cancel()
	}
	c.props.Collapsed = collapsed
	c.relayout()
}

// SetCallbacks replaces the callbacks only.
func (c *CollapsePane) SetCallbacks(cb Callbacks) {
	c.props.Callbacks = cb
}

// SetOrigin sets the screen position of the top-left cell. Mouse
// coordinates are translated relative to it.
func (c *CollapsePane) SetOrigin(x, y int) {
	c.x, c.y = x, y
}

// SetSize sets the pane's outer size in cells.
func (c *CollapsePane) SetSize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.relayout()
}

// Size returns the outer size in cells.
func (c *CollapsePane) Size() (width, height int) {
	return c.width, c.height
}

// Template returns the grid template for the current props.
func (c *CollapsePane) Template() layout.Template {
	p := c.props
	return layout.GridTemplate(p.Sizes, p.CollapsedSize, p.Collapsed, p.Inverted, p.SeparatorWidth)
}

// Cells returns the resolved first, separator and second sizes along the
// split axis.
func (c *CollapsePane) Cells() [3]int {
	return c.cells
}

// Captured reports whether the separator is being dragged.
func (c *CollapsePane) Captured() bool {
	return c.drag.Captured()
}

// Offset is the current drag displacement of the separator.
func (c *CollapsePane) Offset() int {
	return c.drag.Offset()
}

// GhostPosition returns where the moving separator is drawn along the
// axis, or -1 when nothing is being dragged.
func (c *CollapsePane) GhostPosition() int {
	if !c.drag.Captured() {
		return -1
	}
	return clamp(c.cells[0]+c.drag.Offset(), 0, max(c.axisLength()-c.cells[1], 0))
}

// Button returns the collapse button for the current state.
func (c *CollapsePane) Button() CollapseButton {
	return CollapseButton{
		Collapsed:     c.props.Collapsed,
		Inverted:      c.props.Inverted,
		Orientation:   c.props.Orientation,
		CollapseGlyph: c.props.CollapseButton,
		ExpandGlyph:   c.props.ExpandButton,
	}
}

// Update handles mouse and window size messages.
func (c *CollapsePane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		c.handleMouse(msg)
	}
	return nil
}

func (c *CollapsePane) handleMouse(msg tea.MouseMsg) {
	lx, ly := msg.X-c.x, msg.Y-c.y
	inside := lx >= 0 && ly >= 0 && lx < c.width && ly < c.height
	pos := c.props.Orientation.Axis(lx, ly)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		if c.onButton(lx, ly) {
			c.toggle()
			return
		}
		if c.onSeparator(lx, ly) {
			c.capture(pos)
		}
	case tea.MouseActionMotion:
		if !c.drag.Captured() {
			return
		}
		if !inside {
			// leaving the pane ends the drag like a release
			c.release()
			return
		}
		c.move(pos)
	case tea.MouseActionRelease:
		if !c.drag.Captured() {
			return
		}
		if inside {
			c.move(pos)
		}
		c.release()
	}
}

func (c *CollapsePane) capture(pos int) {
	if !c.drag.Capture(pos, c.props.Collapsed) {
		c.logger.Debug().Int("pos", pos).Msg("separator press ignored while collapsed")
		return
	}
	c.reference = c.cells[0]
	c.logger.Debug().Int("pos", pos).Int("separator", c.reference).Msg("separator captured")
}

func (c *CollapsePane) move(pos int) {
	offset := c.drag.Move(pos, c.reference, c.props.SnapPoints, c.props.SnapRadius)
	c.logger.Trace().
		Str("transform", layout.CalculateSeparatorTranslate(offset, c.props.Orientation)).
		Msg("separator moved")
}

func (c *CollapsePane) release() {
	offset := c.drag.Offset()
	rel := c.drag.Release(c.cells[0], c.cells[2], c.props.Inverted, c.props.CollapsedSize)

	switch rel.Kind {
	case layout.ReleaseCollapse:
		c.logger.Debug().Int("offset", offset).Msg("separator released below collapsed size")
		c.props.Callbacks.collapse()
	case layout.ReleaseResize:
		c.logger.Debug().
			Int("offset", offset).
			Float64("first", rel.Sizes[0]).
			Float64("second", rel.Sizes[1]).
			Msg("separator released")
		c.props.Callbacks.sizeChanged(rel.Sizes)
	}
}

func (c *CollapsePane) toggle() {
	c.drag.Cancel()
	if c.props.Collapsed {
		c.logger.Debug().Msg("expand button pressed")
		c.props.Callbacks.expand()
		return
	}
	c.logger.Debug().Msg("collapse button pressed")
	c.props.Callbacks.collapse()
}

func (c *CollapsePane) relayout() {
	c.cells = c.Template().Resolve(c.axisLength())
	if c.props.Orientation == layout.OrientationHorizontal {
		setPanelSize(c.first, c.width, c.cells[0])
		setPanelSize(c.second, c.width, c.cells[2])
		return
	}
	setPanelSize(c.first, c.cells[0], c.height)
	setPanelSize(c.second, c.cells[2], c.height)
}

func (c *CollapsePane) axisLength() int {
	return c.props.Orientation.Axis(c.width, c.height)
}

// crossLength is the length of the separator itself.
func (c *CollapsePane) crossLength() int {
	return c.props.Orientation.Axis(c.height, c.width)
}

func (c *CollapsePane) onSeparator(lx, ly int) bool {
	pos := c.props.Orientation.Axis(lx, ly)
	return pos >= c.cells[0] && pos < c.cells[0]+c.cells[1]
}

func (c *CollapsePane) onButton(lx, ly int) bool {
	if !c.onSeparator(lx, ly) {
		return false
	}
	along := c.props.Orientation.Axis(ly, lx)
	start := c.buttonPosition()
	return along >= start && along < start+c.buttonLength()
}

// buttonLength is how many cells the button spans along the separator.
func (c *CollapsePane) buttonLength() int {
	if c.props.Orientation == layout.OrientationHorizontal {
		return min(c.Button().Width(), c.width)
	}
	return 1
}

func (c *CollapsePane) buttonPosition() int {
	free := c.crossLength() - c.buttonLength()
	if free <= 0 {
		return 0
	}
	return free * c.props.CollapseButtonOffset / 100
}

// View renders the pane at exactly its configured size.
func (c *CollapsePane) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}

	var view string
	if c.props.Orientation == layout.OrientationHorizontal {
		view = c.viewStacked()
	} else {
		view = c.viewSideBySide()
	}
	if c.drag.Captured() {
		view = c.overlayGhost(view)
	}
	return view
}

func (c *CollapsePane) viewSideBySide() string {
	parts := make([]string, 0, 3)
	if c.cells[0] > 0 {
		parts = append(parts, renderPanel(c.first, c.cells[0], c.height))
	}
	if c.cells[1] > 0 {
		parts = append(parts, c.separatorColumn())
	}
	if c.cells[2] > 0 {
		parts = append(parts, renderPanel(c.second, c.cells[2], c.height))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (c *CollapsePane) viewStacked() string {
	parts := make([]string, 0, 3)
	if c.cells[0] > 0 {
		parts = append(parts, renderPanel(c.first, c.width, c.cells[0]))
	}
	if c.cells[1] > 0 {
		parts = append(parts, c.separatorRows())
	}
	if c.cells[2] > 0 {
		parts = append(parts, renderPanel(c.second, c.width, c.cells[2]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (c *CollapsePane) separatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(c.props.SeparatorColor)
}

func (c *CollapsePane) buttonStyle() lipgloss.Style {
	return c.separatorStyle().Foreground(buttonColor).Bold(true)
}

func (c *CollapsePane) separatorColumn() string {
	width := c.cells[1]
	style := c.separatorStyle()
	blank := fill(style, width)
	row := c.buttonPosition()

	lines := make([]string, c.height)
	for i := range lines {
		if i != row {
			lines[i] = blank
			continue
		}
		btn := c.Button().Render(c.buttonStyle(), width)
		lines[i] = btn + fill(style, width-lipgloss.Width(btn))
	}
	return strings.Join(lines, "\n")
}

func (c *CollapsePane) separatorRows() string {
	style := c.separatorStyle()
	blank := fill(style, c.width)
	lines := make([]string, c.cells[1])
	for i := range lines {
		lines[i] = blank
	}

	col := c.buttonPosition()
	btn := c.Button().Render(c.buttonStyle(), c.width-col)
	lines[0] = fill(style, col) + btn + fill(style, c.width-col-lipgloss.Width(btn))
	return strings.Join(lines, "\n")
}

// overlayGhost draws the moving separator over the rendered view.
func (c *CollapsePane) overlayGhost(view string) string {
	thickness := c.cells[1]
	if thickness <= 0 {
		return view
	}
	pos := c.GhostPosition()
	style := lipgloss.NewStyle().Background(c.props.MovingSeparatorColor)
	lines := strings.Split(view, "\n")

	if c.props.Orientation == layout.OrientationHorizontal {
		row := fill(style, c.width)
		for i := pos; i < pos+thickness && i < len(lines); i++ {
			lines[i] = row
		}
		return strings.Join(lines, "\n")
	}

	ghost := fill(style, thickness)
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, pos, "") + ghost + ansi.TruncateLeft(line, pos+thickness, "")
	}
	return strings.Join(lines, "\n")
}

func renderPanel(p layout.Panel, width, height int) string {
	content := ""
	if p != nil {
		content = p.View()
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(content)
}

func setPanelSize(p layout.Panel, width, height int) {
	if p != nil {
		p.SetSize(width, height)
	}
}

func fill(style lipgloss.Style, n int) string {
	if n <= 0 {
		return ""
	}
	return style.Render(strings.Repeat(" ", n))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
