package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
	"github.com/bnema/collapsepane/internal/ui/layout"
)

func newTestDemo(t *testing.T, mutate func(*config.Config)) *DemoModel {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	m := NewDemoModel(context.Background(), styles.NewTheme(cfg), cfg)
	m.Update(tea.WindowSizeMsg{Width: 61, Height: 20})
	return m
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPaneProps(t *testing.T) {
	cfg := config.DefaultConfig().Pane
	cfg.InitialSizes = []float64{3, 1}
	cfg.Orientation = config.OrientationHorizontal
	cfg.SnapPoints = []int{10}
	cfg.ExpandGlyph = "+"

	props := PaneProps(cfg)

	assert.Equal(t, layout.Sizes{3, 1}, props.Sizes)
	assert.Equal(t, layout.OrientationHorizontal, props.Orientation)
	assert.Equal(t, []int{10}, props.SnapPoints)
	assert.Equal(t, "+", props.ExpandButton)
	assert.Equal(t, lipgloss.Color("#000000"), props.SeparatorColor)
	assert.Equal(t, 50, props.CollapseButtonOffset)
}

func TestDemoModel_LayoutLeavesRoomForChrome(t *testing.T) {
	m := newTestDemo(t, nil)

	w, h := m.Pane().Size()
	assert.Equal(t, 61, w)
	assert.Equal(t, 18, h, "status line and short help take one row each")
	assert.Equal(t, [3]int{20, 1, 40}, m.Pane().Cells())

	fw, fh := m.first.Size()
	assert.Equal(t, 20, fw)
	assert.Equal(t, 18, fh)
	assert.Equal(t, 20, lipgloss.Height(m.View()))
}

func TestDemoModel_DragUpdatesSizes(t *testing.T) {
	m := newTestDemo(t, nil)

	m.Update(tea.MouseMsg{X: 20, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 25, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Contains(t, m.View(), "translateX(5px)")
	m.Update(tea.MouseMsg{X: 30, Y: 1, Action: tea.MouseActionRelease})

	assert.Equal(t, layout.Sizes{30, 30}, m.Pane().Props().Sizes)
	assert.Equal(t, [3]int{30, 1, 30}, m.Pane().Cells())
	assert.Equal(t, "onSizeChanged [30, 30]", m.lastEvent)
}

func TestDemoModel_DragPastThresholdCollapses(t *testing.T) {
	m := newTestDemo(t, nil)

	m.Update(tea.MouseMsg{X: 20, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionRelease})

	require.True(t, m.Pane().Props().Collapsed)
	assert.Equal(t, "onCollapse", m.lastEvent)
	assert.Equal(t, "10px 1px auto", m.Pane().Template().String())
}

func TestDemoModel_Keys(t *testing.T) {
	m := newTestDemo(t, nil)

	m.Update(keyPress("c"))
	assert.True(t, m.Pane().Props().Collapsed)
	m.Update(keyPress("c"))
	assert.False(t, m.Pane().Props().Collapsed)

	m.Update(keyPress("o"))
	assert.Equal(t, layout.OrientationHorizontal, m.Pane().Props().Orientation)

	m.Update(keyPress("i"))
	assert.True(t, m.Pane().Props().Inverted)

	m.Update(keyPress("r"))
	assert.Equal(t, layout.Sizes{1, 2}, m.Pane().Props().Sizes)
	assert.Equal(t, 5, m.events)
}

func TestDemoModel_Nudge(t *testing.T) {
	m := newTestDemo(t, nil)

	m.Update(keyPress("l"))
	assert.Equal(t, layout.Sizes{21, 39}, m.Pane().Props().Sizes)

	m.Update(keyPress("h"))
	m.Update(keyPress("h"))
	assert.Equal(t, layout.Sizes{19, 41}, m.Pane().Props().Sizes)

	m.Update(keyPress("c"))
	sizes := m.Pane().Props().Sizes
	m.Update(keyPress("l"))
	assert.Equal(t, sizes, m.Pane().Props().Sizes, "collapsed panes are not nudged")
}

func TestDemoModel_ConfigReloadKeepsState(t *testing.T) {
	m := newTestDemo(t, nil)
	m.Update(keyPress("c"))

	cfg := config.DefaultConfig()
	cfg.Pane.SeparatorWidth = 3
	cfg.Pane.SeparatorColor = "#ff0000"
	m.Update(ConfigReloadedMsg{Config: cfg})

	props := m.Pane().Props()
	assert.True(t, props.Collapsed)
	assert.Equal(t, 3, props.SeparatorWidth)
	assert.Equal(t, lipgloss.Color("#ff0000"), m.theme.Separator)
	require.NotNil(t, props.Callbacks.OnExpand)
}

func TestDemoModel_Quit(t *testing.T) {
	m := newTestDemo(t, nil)

	_, cmd := m.Update(keyPress("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "15", formatSize(15))
	assert.Equal(t, "0.5", formatSize(0.5))
	assert.Equal(t, "0", formatSize(0))
	assert.Equal(t, "-3.25", formatSize(-3.25))
}
