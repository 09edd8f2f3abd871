package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/collapsepane/internal/ui/layout"
)

// maxPreviewWidth caps the bar drawn under the template.
const maxPreviewWidth = 120

// TemplateRenderer renders a grid template with its resolved cell sizes.
type TemplateRenderer struct {
	theme *Theme
}

// NewTemplateRenderer creates a new template renderer with the given theme.
func NewTemplateRenderer(theme *Theme) *TemplateRenderer {
	return &TemplateRenderer{theme: theme}
}

// Render prints the template as the matching CSS property, one line per
// track and, for lengths that fit, a bar preview of the split.
func (r *TemplateRenderer) Render(tmpl layout.Template, orientation layout.Orientation, total int) string {
	property := "grid-template-columns"
	if orientation == layout.OrientationHorizontal {
		property = "grid-template-rows"
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	cells := tmpl.Resolve(total)
	names := [3]string{"first", "separator", "second"}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"\n  %s %s %s\n\n",
		iconStyle.Render(IconPane),
		r.theme.Subtle.Render(property+":"),
		r.theme.Highlight.Render(tmpl.String()),
	))
	for i, track := range tmpl {
		sb.WriteString(fmt.Sprintf(
			"    %s %s %s %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Subtle.Render(fmt.Sprintf("%-9s", names[i])),
			r.theme.Normal.Render(fmt.Sprintf("%-8s", track.String())),
			r.theme.Highlight.Render(fmt.Sprintf("%d cells", cells[i])),
		))
	}

	if total > 0 && total <= maxPreviewWidth {
		sb.WriteString("\n    ")
		sb.WriteString(r.preview(cells))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *TemplateRenderer) preview(cells [3]int) string {
	first := lipgloss.NewStyle().Foreground(r.theme.Accent)
	sep := lipgloss.NewStyle().Foreground(r.theme.Muted)
	second := lipgloss.NewStyle().Foreground(r.theme.SurfaceVariant)

	return first.Render(strings.Repeat("█", cells[0])) +
		sep.Render(strings.Repeat("│", cells[1])) +
		second.Render(strings.Repeat("█", cells[2]))
}

// RenderDrag prints the outcome of a simulated drag.
func (r *TemplateRenderer) RenderDrag(offset int, orientation layout.Orientation, rel layout.Release) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var result string
	switch rel.Kind {
	case layout.ReleaseCollapse:
		result = r.theme.Highlight.Render(IconCollapse + " onCollapse")
	case layout.ReleaseResize:
		result = r.theme.Highlight.Render(fmt.Sprintf("onSizeChanged [%s, %s]",
			strconv.FormatFloat(rel.Sizes[0], 'f', -1, 64),
			strconv.FormatFloat(rel.Sizes[1], 'f', -1, 64)))
	default:
		result = r.theme.Subtle.Render("nothing")
	}

	return fmt.Sprintf(
		"\n  %s %s %s\n  %s %s %s\n",
		iconStyle.Render(IconCursor),
		r.theme.Subtle.Render("transform:"),
		r.theme.Normal.Render(layout.CalculateSeparatorTranslate(offset, orientation)),
		iconStyle.Render(IconCursor),
		r.theme.Subtle.Render("release:  "),
		result,
	)
}

// RenderIgnoredDrag explains why a press did not start a drag.
func (r *TemplateRenderer) RenderIgnoredDrag() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s %s\n",
		iconStyle.Render(IconX),
		r.theme.Subtle.Render("press ignored: a collapsed pane cannot be dragged"),
	)
}
