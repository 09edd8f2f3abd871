package layout

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultSeparatorWidth is used when a template is built with a zero
// separator width.
const DefaultSeparatorWidth = 2

// TrackKind identifies how a grid track claims space.
type TrackKind int

const (
	// TrackFraction takes a share of the free space proportional to its weight.
	TrackFraction TrackKind = iota
	// TrackFixed takes exactly Value cells.
	TrackFixed
	// TrackAuto takes whatever is left after fixed tracks.
	TrackAuto
)

// Track is one entry of a three-track template.
type Track struct {
	Kind  TrackKind
	Value float64
}

// String formats the track in CSS grid-template syntax. Fixed lengths keep
// the px suffix; a px is one terminal cell.
func (t Track) String() string {
	switch t.Kind {
	case TrackFixed:
		return formatNumber(t.Value) + "px"
	case TrackAuto:
		return "auto"
	default:
		return formatNumber(t.Value) + "fr"
	}
}

// Template is the first | separator | second track list of the split.
type Template [3]Track

// String joins the tracks with single spaces, e.g. "1fr 2px 2fr".
func (t Template) String() string {
	parts := make([]string, len(t))
	for i, track := range t {
		parts[i] = track.String()
	}
	return strings.Join(parts, " ")
}

// GridTemplate builds the structured template for the given state.
// When collapsed, the collapsing side becomes a fixed track of collapsedSize
// cells and the other side becomes auto; inverted collapses the second pane.
func GridTemplate(sizes Sizes, collapsedSize int, collapsed, inverted bool, separatorWidth int) Template {
	if separatorWidth <= 0 {
		separatorWidth = DefaultSeparatorWidth
	}
	sep := Track{Kind: TrackFixed, Value: float64(separatorWidth)}
	fixed := Track{Kind: TrackFixed, Value: float64(collapsedSize)}
	auto := Track{Kind: TrackAuto}

	if collapsed {
		if inverted {
			return Template{auto, sep, fixed}
		}
		return Template{fixed, sep, auto}
	}

	return Template{
		{Kind: TrackFraction, Value: sizes[0]},
		sep,
		{Kind: TrackFraction, Value: sizes[1]},
	}
}

// CalculateGridTemplate returns the template string for the given state.
func CalculateGridTemplate(sizes Sizes, collapsedSize int, collapsed, inverted bool, separatorWidth int) string {
	return GridTemplate(sizes, collapsedSize, collapsed, inverted, separatorWidth).String()
}

// Resolve distributes total cells over the three tracks. Fixed tracks are
// served first and clamped to what is available, auto tracks share the rest
// evenly, and fraction tracks split the rest by weight using the largest
// remainder method so the result always sums to total.
func (t Template) Resolve(total int) [3]int {
	var out [3]int
	if total <= 0 {
		return out
	}

	free := total
	for i, track := range t {
		if track.Kind != TrackFixed {
			continue
		}
		n := int(math.Round(track.Value))
		if n < 0 {
			n = 0
		}
		if n > free {
			n = free
		}
		out[i] = n
		free -= n
	}

	var autos, fracs []int
	for i, track := range t {
		switch track.Kind {
		case TrackAuto:
			autos = append(autos, i)
		case TrackFraction:
			fracs = append(fracs, i)
		}
	}

	if len(fracs) > 0 {
		distributeFractions(t, fracs, free, &out)
		free = 0
	}
	for j, i := range autos {
		share := free / (len(autos) - j)
		out[i] = share
		free -= share
	}

	return out
}

func distributeFractions(t Template, idx []int, free int, out *[3]int) {
	weights := make([]float64, len(idx))
	var sum float64
	for j, i := range idx {
		w := t[i].Value
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			w = 0
		}
		weights[j] = w
		sum += w
	}
	if sum == 0 {
		for j := range weights {
			weights[j] = 1
		}
		sum = float64(len(weights))
	}

	type remainder struct {
		pos  int
		frac float64
	}
	rems := make([]remainder, len(idx))
	used := 0
	for j, i := range idx {
		exact := float64(free) * weights[j] / sum
		whole := int(math.Floor(exact))
		out[i] = whole
		used += whole
		rems[j] = remainder{pos: j, frac: exact - float64(whole)}
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for k := 0; used < free; k++ {
		out[idx[rems[k%len(rems)].pos]]++
		used++
	}
}

// ParseTemplate reads a template string produced by Template.String.
func ParseTemplate(s string) (Template, error) {
	var t Template
	fields := strings.Fields(s)
	if len(fields) != len(t) {
		return t, fmt.Errorf("template %q: expected %d tracks, got %d", s, len(t), len(fields))
	}
	for i, f := range fields {
		track, err := parseTrack(f)
		if err != nil {
			return t, fmt.Errorf("template %q: %w", s, err)
		}
		t[i] = track
	}
	return t, nil
}

func parseTrack(s string) (Track, error) {
	switch {
	case s == "auto":
		return Track{Kind: TrackAuto}, nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Track{}, fmt.Errorf("invalid fixed track %q: %w", s, err)
		}
		return Track{Kind: TrackFixed, Value: v}, nil
	case strings.HasSuffix(s, "fr"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "fr"), 64)
		if err != nil {
			return Track{}, fmt.Errorf("invalid fraction track %q: %w", s, err)
		}
		return Track{Kind: TrackFraction, Value: v}, nil
	}
	return Track{}, fmt.Errorf("unknown track %q", s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
