package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/collapsepane/internal/ui/layout"
)

func TestCalculateSizes_ConservesTotal(t *testing.T) {
	tests := []struct {
		name          string
		delta         float64
		first, second float64
		expected      layout.Sizes
	}{
		{"no_move", 0, 100, 200, layout.Sizes{100, 200}},
		{"grow_first", 30, 100, 200, layout.Sizes{130, 170}},
		{"shrink_first", -40, 100, 200, layout.Sizes{60, 240}},
		{"past_second", 250, 100, 200, layout.Sizes{350, -50}},
		{"fractional", 0.5, 1, 2, layout.Sizes{1.5, 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.CalculateSizes(tt.delta, tt.first, tt.second)

			assert.Equal(t, tt.expected, got)
			assert.InDelta(t, tt.first+tt.second, got.Total(), 1e-9)
		})
	}
}

func TestCalculateSizes_ConservesTotalForAnyDelta(t *testing.T) {
	for delta := -500; delta <= 500; delta += 7 {
		got := layout.CalculateSizes(float64(delta), 120, 80)
		assert.InDelta(t, 200.0, got.Total(), 1e-9, "delta %d", delta)
	}
}

func TestCalculateOffset_NoSnapPoints(t *testing.T) {
	assert.Equal(t, 25, layout.CalculateOffset(125, 100, 40, nil))
	assert.Equal(t, -10, layout.CalculateOffset(90, 100, 40, []int{}))
}

func TestCalculateOffset_Snapping(t *testing.T) {
	tests := []struct {
		name      string
		pos       int
		start     int
		reference int
		snaps     []int
		expected  int
	}{
		// separator at 40 moves to 55, snap 60 is 5 away: land on 60
		{"within_radius", 115, 100, 40, []int{60}, 20},
		// 40+45=85, nearest is 90 (5) over 70 (15)
		{"nearest_wins", 145, 100, 40, []int{70, 90}, 50},
		// exactly SnapRadius away is outside
		{"boundary_excluded", 100, 100, 40, []int{60}, 0},
		{"just_inside", 101, 100, 40, []int{60}, 20},
		{"none_near", 100, 100, 40, []int{200, 300}, 0},
		{"snap_backwards", 90, 100, 40, []int{25}, -15},
		{"tie_keeps_first", 100, 100, 40, []int{30, 50}, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.CalculateOffset(tt.pos, tt.start, tt.reference, tt.snaps)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculateOffsetWithin_CustomRadius(t *testing.T) {
	// 40+5=45, snap at 50 is 5 away
	assert.Equal(t, 5, layout.CalculateOffsetWithin(105, 100, 40, []int{50}, 3))
	assert.Equal(t, 10, layout.CalculateOffsetWithin(105, 100, 40, []int{50}, 6))
	// non-positive radius falls back to SnapRadius
	assert.Equal(t, 10, layout.CalculateOffsetWithin(105, 100, 40, []int{50}, 0))
}

func TestPaneIsSmallerThanCollapsedSize(t *testing.T) {
	tests := []struct {
		name     string
		sizes    layout.Sizes
		inverted bool
		expected bool
	}{
		{"first_small", layout.Sizes{5, 100}, false, true},
		{"first_equal", layout.Sizes{10, 100}, false, false},
		{"first_small_but_inverted", layout.Sizes{5, 100}, true, false},
		{"second_small_inverted", layout.Sizes{100, 9}, true, true},
		{"second_small_not_inverted", layout.Sizes{100, 9}, false, false},
		{"negative", layout.Sizes{-3, 100}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, layout.PaneIsSmallerThanCollapsedSize(tt.sizes, tt.inverted, 10))
		})
	}
}

func TestCalculateSeparatorTranslate(t *testing.T) {
	assert.Equal(t, "translateX(12px)", layout.CalculateSeparatorTranslate(12, layout.OrientationVertical))
	assert.Equal(t, "translateY(-4px)", layout.CalculateSeparatorTranslate(-4, layout.OrientationHorizontal))
}

func TestSizesNormalize(t *testing.T) {
	assert.Equal(t, layout.Sizes{1, 2}, layout.Sizes{10, 20}.Normalize(3))
	assert.Equal(t, layout.Sizes{1.5, 1.5}, layout.Sizes{0, 0}.Normalize(3))
	assert.Equal(t, layout.Sizes{0, 3}, layout.Sizes{-5, 20}.Normalize(3))
}

func TestParseOrientation(t *testing.T) {
	assert.Equal(t, layout.OrientationHorizontal, layout.ParseOrientation("horizontal"))
	assert.Equal(t, layout.OrientationVertical, layout.ParseOrientation("vertical"))
	assert.Equal(t, layout.OrientationVertical, layout.ParseOrientation("sideways"))
	assert.Equal(t, "horizontal", layout.OrientationHorizontal.String())
	assert.Equal(t, 7, layout.OrientationHorizontal.Axis(3, 7))
	assert.Equal(t, 3, layout.OrientationVertical.Axis(3, 7))
}
