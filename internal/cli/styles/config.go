package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/collapsepane/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderConfig renders the effective configuration as aligned key/value lines.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	p := cfg.Pane
	rows := [][2]string{
		{"pane.initial_sizes", fmt.Sprint(p.InitialSizes)},
		{"pane.collapsed_size", fmt.Sprint(p.CollapsedSize)},
		{"pane.start_collapsed", fmt.Sprint(p.StartCollapsed)},
		{"pane.orientation", p.Orientation},
		{"pane.inverted", fmt.Sprint(p.Inverted)},
		{"pane.separator_width", fmt.Sprint(p.SeparatorWidth)},
		{"pane.separator_color", p.SeparatorColor},
		{"pane.moving_separator_color", p.MovingSeparatorColor},
		{"pane.collapse_button_offset", fmt.Sprintf("%d%%", p.CollapseButtonOffset)},
		{"pane.collapse_glyph", p.CollapseGlyph},
		{"pane.expand_glyph", p.ExpandGlyph},
		{"pane.snap_points", fmt.Sprint(p.SnapPoints)},
		{"pane.snap_radius", fmt.Sprint(p.SnapRadius)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.enable_file_log", fmt.Sprint(cfg.Logging.EnableFileLog)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	var sb strings.Builder
	sb.WriteString(r.RenderPath(path))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(
			"    %s %s %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(fmt.Sprintf("%-*s", width, row[0])),
			valStyle.Render(row[1]),
		))
	}
	return sb.String()
}

// RenderSchemaWritten renders the success message after writing the schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderUpToDate renders the message shown when no migration is needed.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config is up to date %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderMigrationPlan lists the keys a migration adds and removes.
func (r *ConfigRenderer) RenderMigrationPlan(plan *config.MigrationPlan) string {
	added := lipgloss.NewStyle().Foreground(r.theme.Success)
	removed := lipgloss.NewStyle().Foreground(r.theme.Error)

	var sb strings.Builder
	sb.WriteString("\n")
	for _, k := range plan.Missing {
		sb.WriteString(fmt.Sprintf(
			"    %s %s %s %s\n",
			added.Render("+"),
			r.theme.Normal.Render(k.Key),
			r.theme.Highlight.Render("= "+k.DefaultValue),
			r.theme.Subtle.Render("("+k.Type+")"),
		))
	}
	for _, key := range plan.Unknown {
		sb.WriteString(fmt.Sprintf(
			"    %s %s %s\n",
			removed.Render("-"),
			r.theme.Normal.Render(key),
			r.theme.Subtle.Render("(no longer used)"),
		))
	}
	return sb.String()
}

// RenderMigrated renders the success message after a migration.
func (r *ConfigRenderer) RenderMigrated(path string, plan *config.MigrationPlan) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Added %d and removed %d keys in %s\n",
		iconStyle.Render(IconCheck),
		len(plan.Missing),
		len(plan.Unknown),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
