package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/collapsepane/internal/ui/layout"
)

func TestDrag_ZeroValueIsIdle(t *testing.T) {
	var d layout.Drag

	assert.False(t, d.Captured())
	assert.Equal(t, 0, d.Move(50, 10, nil, 0))
	assert.Equal(t, layout.Release{Kind: layout.ReleaseNone}, d.Release(10, 20, false, 5))
}

func TestDrag_CaptureBlockedWhenCollapsed(t *testing.T) {
	var d layout.Drag

	assert.False(t, d.Capture(30, true))
	assert.False(t, d.Captured())
}

func TestDrag_ResizeCycle(t *testing.T) {
	// Arrange
	var d layout.Drag
	require.True(t, d.Capture(30, false))
	assert.Equal(t, layout.CaptureState{IsCaptured: true, StartPosition: 30}, d.State())

	// Act
	d.Move(35, 30, nil, 0)
	offset := d.Move(38, 30, nil, 0)
	rel := d.Release(30, 50, false, 10)

	// Assert
	assert.Equal(t, 8, offset)
	assert.Equal(t, layout.ReleaseResize, rel.Kind)
	assert.Equal(t, layout.Sizes{38, 42}, rel.Sizes)
	assert.False(t, d.Captured())
	assert.Equal(t, 0, d.Offset(), "offset resets after release")
}

func TestDrag_CollapseBelowThreshold(t *testing.T) {
	tests := []struct {
		name     string
		to       int
		inverted bool
		expected layout.ReleaseKind
	}{
		{"first_pane_too_small", 5, false, layout.ReleaseCollapse},
		{"first_pane_exactly_threshold", 10, false, layout.ReleaseResize},
		{"inverted_ignores_first", 5, true, layout.ReleaseResize},
		{"inverted_second_too_small", 75, true, layout.ReleaseCollapse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d layout.Drag
			require.True(t, d.Capture(30, false))
			d.Move(tt.to, 30, nil, 0)

			rel := d.Release(30, 50, tt.inverted, 10)

			assert.Equal(t, tt.expected, rel.Kind)
			assert.InDelta(t, 80.0, rel.Sizes.Total(), 1e-9)
		})
	}
}

func TestDrag_MoveSnaps(t *testing.T) {
	var d layout.Drag
	require.True(t, d.Capture(30, false))

	// separator at 30 dragged to 33, snap point at 35 is within radius 4
	assert.Equal(t, 5, d.Move(33, 30, []int{35}, 4))
	// dragged to 45, snap 35 is 10 away: raw delta
	assert.Equal(t, 15, d.Move(45, 30, []int{35}, 4))
}

func TestDrag_Cancel(t *testing.T) {
	var d layout.Drag
	require.True(t, d.Capture(30, false))
	d.Move(40, 30, nil, 0)

	d.Cancel()

	assert.False(t, d.Captured())
	assert.Equal(t, 0, d.Offset())
	assert.Equal(t, layout.ReleaseNone, d.Release(30, 50, false, 10).Kind)
}
