package layout

import (
	"fmt"
	"math"
)

// SnapRadius is the distance, in cells, within which the separator snaps
// to a snap point while dragging.
const SnapRadius = 20

// Sizes are the relative weights of the first and second pane.
// [1, 2] makes the second pane twice as large as the first.
type Sizes [2]float64

// Total returns the sum of both weights.
func (s Sizes) Total() float64 {
	return s[0] + s[1]
}

// CalculateSizes moves delta from the second pane to the first.
// The total is conserved for any delta.
func CalculateSizes(delta, firstSize, secondSize float64) Sizes {
	return Sizes{firstSize + delta, secondSize - delta}
}

// CalculateOffset returns how far the separator moved from startPos.
// If a snap point lies within SnapRadius of the separator's would-be
// position (referencePoint plus the raw delta), the offset is adjusted so
// the separator lands exactly on the nearest such point.
func CalculateOffset(pos, startPos, referencePoint int, snapPoints []int) int {
	return CalculateOffsetWithin(pos, startPos, referencePoint, snapPoints, SnapRadius)
}

// CalculateOffsetWithin is CalculateOffset with an explicit snap radius.
// A radius of zero or less means SnapRadius.
func CalculateOffsetWithin(pos, startPos, referencePoint int, snapPoints []int, radius int) int {
	shift := pos - startPos
	if len(snapPoints) == 0 {
		return shift
	}
	if radius <= 0 {
		radius = SnapRadius
	}

	current := referencePoint + shift
	best, bestDist := 0, radius
	found := false
	for _, p := range snapPoints {
		d := abs(p - current)
		if d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	if !found {
		return shift
	}
	return best - referencePoint
}

// PaneIsSmallerThanCollapsedSize reports whether the collapsing pane
// (the second one when inverted, the first otherwise) fell below
// collapsedSize.
func PaneIsSmallerThanCollapsedSize(sizes Sizes, inverted bool, collapsedSize float64) bool {
	if inverted {
		return sizes[1] < collapsedSize
	}
	return sizes[0] < collapsedSize
}

// CalculateSeparatorTranslate describes the moving separator's displacement
// as a CSS transform, used in debug output.
func CalculateSeparatorTranslate(offset int, orientation Orientation) string {
	if orientation == OrientationHorizontal {
		return fmt.Sprintf("translateY(%dpx)", offset)
	}
	return fmt.Sprintf("translateX(%dpx)", offset)
}

// Normalize rescales sizes so they sum to total, keeping the ratio.
// Non-positive or invalid sizes become an even split.
func (s Sizes) Normalize(total float64) Sizes {
	a, b := s[0], s[1]
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		a = 0
	}
	if b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		b = 0
	}
	sum := a + b
	if sum == 0 {
		return Sizes{total / 2, total / 2}
	}
	return Sizes{total * a / sum, total * b / sum}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
