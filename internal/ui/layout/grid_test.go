package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/collapsepane/internal/ui/layout"
)

func TestCalculateGridTemplate(t *testing.T) {
	tests := []struct {
		name           string
		sizes          layout.Sizes
		collapsed      bool
		inverted       bool
		separatorWidth int
		expected       string
	}{
		{"expanded", layout.Sizes{1, 2}, false, false, 0, "1fr 2px 2fr"},
		{"expanded_inverted", layout.Sizes{1, 2}, false, true, 0, "1fr 2px 2fr"},
		{"expanded_fractional", layout.Sizes{1.5, 0.25}, false, false, 1, "1.5fr 1px 0.25fr"},
		{"collapsed", layout.Sizes{1, 2}, true, false, 0, "100px 2px auto"},
		{"collapsed_inverted", layout.Sizes{1, 2}, true, true, 0, "auto 2px 100px"},
		{"custom_separator", layout.Sizes{3, 1}, true, false, 5, "100px 5px auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layout.CalculateGridTemplate(tt.sizes, 100, tt.collapsed, tt.inverted, tt.separatorWidth)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGridTemplate_FixedTrackPlacement(t *testing.T) {
	normal := layout.GridTemplate(layout.Sizes{1, 1}, 8, true, false, 1)
	assert.Equal(t, layout.TrackFixed, normal[0].Kind)
	assert.Equal(t, layout.TrackAuto, normal[2].Kind)

	inverted := layout.GridTemplate(layout.Sizes{1, 1}, 8, true, true, 1)
	assert.Equal(t, layout.TrackAuto, inverted[0].Kind)
	assert.Equal(t, layout.TrackFixed, inverted[2].Kind)
	assert.Equal(t, 8.0, inverted[2].Value)
}

func TestTemplateResolve(t *testing.T) {
	tests := []struct {
		name     string
		template layout.Template
		total    int
		expected [3]int
	}{
		{"thirds", layout.GridTemplate(layout.Sizes{1, 2}, 10, false, false, 1), 31, [3]int{10, 1, 20}},
		{"remainder_to_largest", layout.GridTemplate(layout.Sizes{1, 1}, 10, false, false, 1), 80, [3]int{40, 1, 39}},
		{"collapsed_first", layout.GridTemplate(layout.Sizes{1, 2}, 10, true, false, 1), 80, [3]int{10, 1, 69}},
		{"collapsed_second", layout.GridTemplate(layout.Sizes{1, 2}, 10, true, true, 2), 80, [3]int{68, 2, 10}},
		{"fixed_clamped", layout.GridTemplate(layout.Sizes{1, 2}, 100, true, false, 1), 40, [3]int{40, 0, 0}},
		{"negative_weight", layout.GridTemplate(layout.Sizes{100, -100}, 10, false, false, 1), 21, [3]int{20, 1, 0}},
		{"zero_weights", layout.GridTemplate(layout.Sizes{0, 0}, 10, false, false, 1), 21, [3]int{10, 1, 10}},
		{"zero_total", layout.GridTemplate(layout.Sizes{1, 2}, 10, false, false, 1), 0, [3]int{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.template.Resolve(tt.total))
		})
	}
}

func TestTemplateResolve_SumsToTotal(t *testing.T) {
	sizes := []layout.Sizes{{1, 2}, {3, 7}, {0.3, 0.7}, {250, 13}, {1, 0}}
	for _, s := range sizes {
		tmpl := layout.GridTemplate(s, 5, false, false, 1)
		for total := 1; total < 200; total += 3 {
			got := tmpl.Resolve(total)
			assert.Equal(t, total, got[0]+got[1]+got[2], "sizes %v total %d", s, total)
		}
	}
}

func TestParseTemplate_RoundTrip(t *testing.T) {
	for _, s := range []string{"1fr 2px 2fr", "100px 2px auto", "auto 1px 12px", "0.5fr 1px 1.25fr"} {
		tmpl, err := layout.ParseTemplate(s)
		require.NoError(t, err)
		assert.Equal(t, s, tmpl.String())
	}
}

func TestParseTemplate_Errors(t *testing.T) {
	for _, s := range []string{"", "1fr 2px", "1fr 2px 2em", "xfr 2px 1fr", "1fr 2px 3fr 4fr"} {
		_, err := layout.ParseTemplate(s)
		assert.Error(t, err, s)
	}
}
