package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
	"github.com/bnema/collapsepane/internal/logging"
	"github.com/bnema/collapsepane/internal/ui/component"
	"github.com/bnema/collapsepane/internal/ui/layout"
)

// ConfigReloadedMsg is sent when the config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// DemoModel hosts a CollapsePane with two scrollable panels and a status
// line reporting every callback the pane fires.
type DemoModel struct {
	ctx    context.Context
	logger *zerolog.Logger
	theme  *styles.Theme
	keys   styles.DemoKeyMap
	help   help.Model

	pane    *component.CollapsePane
	first   *ViewportPanel
	second  *ViewportPanel
	initial layout.Sizes

	lastEvent string
	events    int
	width     int
	height    int
	quitting  bool
}

// PaneProps converts the pane section of the config into component props.
func PaneProps(cfg config.PaneConfig) component.Props {
	props := component.DefaultProps()
	if len(cfg.InitialSizes) == 2 {
		props.Sizes = layout.Sizes{cfg.InitialSizes[0], cfg.InitialSizes[1]}
	}
	props.Collapsed = cfg.StartCollapsed
	props.CollapsedSize = cfg.CollapsedSize
	props.Orientation = layout.ParseOrientation(cfg.Orientation)
	props.Inverted = cfg.Inverted
	props.SeparatorWidth = cfg.SeparatorWidth
	props.SeparatorColor = lipgloss.Color(cfg.SeparatorColor)
	props.MovingSeparatorColor = lipgloss.Color(cfg.MovingSeparatorColor)
	props.CollapseButtonOffset = cfg.CollapseButtonOffset
	props.CollapseButton = cfg.CollapseGlyph
	props.ExpandButton = cfg.ExpandGlyph
	props.SnapPoints = append([]int(nil), cfg.SnapPoints...)
	props.SnapRadius = cfg.SnapRadius
	return props
}

// NewDemoModel creates the demo model from the loaded configuration.
func NewDemoModel(ctx context.Context, theme *styles.Theme, cfg *config.Config) *DemoModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx = logging.WithComponent(ctx, "demo")

	m := &DemoModel{
		ctx:    ctx,
		logger: logging.FromContext(ctx),
		theme:  theme,
		keys:   styles.DefaultDemoKeyMap(),
		help:   styles.NewStyledHelp(theme),
		first:  NewViewportPanel(theme, "First pane", firstPaneContent()),
		second: NewViewportPanel(theme, "Second pane", secondPaneContent()),
	}

	props := PaneProps(cfg.Pane)
	props.Callbacks = component.HandlerCallbacks(m)
	m.initial = props.Sizes
	m.pane = component.NewCollapsePane(ctx, m.first, m.second, props)
	return m
}

// Pane exposes the hosted component.
func (m *DemoModel) Pane() *component.CollapsePane {
	return m.pane
}

// OnSizeChanged implements component.Handler.
func (m *DemoModel) OnSizeChanged(sizes layout.Sizes) {
	m.pane.SetSizes(sizes)
	m.record(fmt.Sprintf("onSizeChanged [%s, %s]", formatSize(sizes[0]), formatSize(sizes[1])))
}

// OnCollapse implements component.Handler.
func (m *DemoModel) OnCollapse() {
	m.pane.SetCollapsed(true)
	m.record("onCollapse")
}

// OnExpand implements component.Handler.
func (m *DemoModel) OnExpand() {
	m.pane.SetCollapsed(false)
	m.record("onExpand")
}

func (m *DemoModel) record(event string) {
	m.events++
	m.lastEvent = event
	m.logger.Info().Int("n", m.events).Str("template", m.pane.Template().String()).Msg(event)
}

// Init implements tea.Model.
func (m *DemoModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	case tea.MouseMsg:
		return m, m.pane.Update(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	}
	return m, nil
}

func (m *DemoModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	props := m.pane.Props()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	case key.Matches(msg, m.keys.Collapse):
		if props.Collapsed {
			m.OnExpand()
		} else {
			m.OnCollapse()
		}
	case key.Matches(msg, m.keys.Orientation):
		if props.Orientation == layout.OrientationHorizontal {
			props.Orientation = layout.OrientationVertical
		} else {
			props.Orientation = layout.OrientationHorizontal
		}
		m.pane.SetProps(props)
		m.record("orientation " + props.Orientation.String())
	case key.Matches(msg, m.keys.Invert):
		props.Inverted = !props.Inverted
		m.pane.SetProps(props)
		m.record(fmt.Sprintf("inverted %t", props.Inverted))
	case key.Matches(msg, m.keys.Grow):
		m.nudge(1)
	case key.Matches(msg, m.keys.Shrink):
		m.nudge(-1)
	case key.Matches(msg, m.keys.Reset):
		m.pane.SetCollapsed(false)
		m.OnSizeChanged(m.initial)
	case key.Matches(msg, m.keys.ScrollDown):
		m.first.ScrollDown(1)
		m.second.ScrollDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.first.ScrollUp(1)
		m.second.ScrollUp(1)
	}
	return m, nil
}

// nudge moves the separator by delta cells, the keyboard version of a drag.
func (m *DemoModel) nudge(delta int) {
	if m.pane.Props().Collapsed {
		return
	}
	cells := m.pane.Cells()
	if cells[0]+delta < 0 || cells[2]-delta < 0 {
		return
	}
	m.OnSizeChanged(layout.CalculateSizes(float64(delta), float64(cells[0]), float64(cells[2])))
}

func (m *DemoModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	current := m.pane.Props()
	props := PaneProps(cfg.Pane)
	props.Sizes = current.Sizes
	props.Collapsed = current.Collapsed
	props.Callbacks = current.Callbacks
	m.pane.SetProps(props)

	m.theme.Separator = props.SeparatorColor
	m.theme.MovingSeparator = props.MovingSeparatorColor
	m.logger.Info().Str("orientation", props.Orientation.String()).Msg("config reloaded")
	m.lastEvent = "config reloaded"
}

// relayout gives the pane everything above the status and help lines.
func (m *DemoModel) relayout() {
	chrome := 1 + lipgloss.Height(m.help.View(m.keys))
	m.pane.SetOrigin(0, 0)
	m.pane.SetSize(m.width, max(m.height-chrome, 0))
}

// View implements tea.Model.
func (m *DemoModel) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.pane.View(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m *DemoModel) renderStatus() string {
	props := m.pane.Props()
	state := styles.IconExpand + " expanded"
	if props.Collapsed {
		state = styles.IconCollapse + " collapsed"
	}

	parts := []string{
		m.theme.Badge.Render(m.pane.Template().String()),
		m.theme.BadgeMuted.Render(state),
		m.theme.Subtle.Render(props.Orientation.String()),
	}
	if props.Inverted {
		parts = append(parts, m.theme.Subtle.Render("inverted"))
	}
	if m.pane.Captured() {
		parts = append(parts, m.theme.Highlight.Render(
			layout.CalculateSeparatorTranslate(m.pane.Offset(), props.Orientation)))
	}
	if m.lastEvent != "" {
		parts = append(parts, m.theme.Normal.Render(fmt.Sprintf("#%d %s", m.events, m.lastEvent)))
	}

	return m.theme.StatusBar.
		Width(max(m.width, 0)).
		MaxWidth(max(m.width, 1)).
		MaxHeight(1).
		Render(strings.Join(parts, " "))
}

func formatSize(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func firstPaneContent() string {
	return strings.Join([]string{
		"Drag the separator with the left mouse button.",
		"",
		"Releasing reports the new sizes through onSizeChanged.",
		"Dragging this pane below the collapsed size",
		"fires onCollapse instead.",
		"",
		"The button on the separator toggles the pane.",
		"While collapsed the separator cannot be dragged.",
	}, "\n")
}

func secondPaneContent() string {
	lines := []string{
		"Snap points pull the separator in when it comes",
		"within the snap radius. Set them in config.toml:",
		"",
		"  [pane]",
		"  snap_points = [20, 40]",
		"  snap_radius = 4",
		"",
		"Edits to the file are applied while the demo runs.",
		"",
	}
	for i := 1; i <= 40; i++ {
		lines = append(lines, fmt.Sprintf("line %02d", i))
	}
	return strings.Join(lines, "\n")
}
