package layout

// CaptureState describes an in-progress separator drag. It only exists
// between a press on the separator and the matching release.
type CaptureState struct {
	IsCaptured    bool
	StartPosition int
}

// ReleaseKind tells the caller what a release resulted in.
type ReleaseKind int

const (
	// ReleaseNone means nothing was captured.
	ReleaseNone ReleaseKind = iota
	// ReleaseResize carries the new pane sizes.
	ReleaseResize
	// ReleaseCollapse means the collapsing pane went below the collapsed size.
	ReleaseCollapse
)

// Release is the outcome of ending a drag.
type Release struct {
	Kind  ReleaseKind
	Sizes Sizes
}

// Drag is the separator state machine: Idle -> Captured on press,
// Captured -> Idle on release. The zero value is idle.
type Drag struct {
	state  CaptureState
	offset int
}

// Capture starts a drag at pos. A collapsed pane cannot be dragged.
func (d *Drag) Capture(pos int, collapsed bool) bool {
	if collapsed {
		return false
	}
	d.state = CaptureState{IsCaptured: true, StartPosition: pos}
	d.offset = 0
	return true
}

// Move updates the transient offset for pointer position pos. reference is
// the separator's position at the start of the drag, used for snapping.
// It returns the current offset, which stays zero while idle.
func (d *Drag) Move(pos, reference int, snapPoints []int, radius int) int {
	if !d.state.IsCaptured {
		return d.offset
	}
	d.offset = CalculateOffsetWithin(pos, d.state.StartPosition, reference, snapPoints, radius)
	return d.offset
}

// Release ends the drag. first and second are the panes' current sizes in
// cells. When the collapsing pane would end up below collapsedSize the
// result is a collapse instead of a resize. The offset is always reset.
func (d *Drag) Release(first, second int, inverted bool, collapsedSize int) Release {
	if !d.state.IsCaptured {
		return Release{Kind: ReleaseNone}
	}
	offset := d.offset
	d.state.IsCaptured = false
	d.offset = 0

	sizes := CalculateSizes(float64(offset), float64(first), float64(second))
	if PaneIsSmallerThanCollapsedSize(sizes, inverted, float64(collapsedSize)) {
		return Release{Kind: ReleaseCollapse, Sizes: sizes}
	}
	return Release{Kind: ReleaseResize, Sizes: sizes}
}

// Cancel drops the current drag without producing a result.
func (d *Drag) Cancel() {
	d.state.IsCaptured = false
	d.offset = 0
}

// Captured reports whether a drag is in progress.
func (d *Drag) Captured() bool {
	return d.state.IsCaptured
}

// Offset returns the transient separator displacement.
func (d *Drag) Offset() int {
	return d.offset
}

// State returns a copy of the capture state.
func (d *Drag) State() CaptureState {
	return d.state
}
