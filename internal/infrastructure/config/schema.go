package config

// Config represents the complete configuration for collapsepane.
type Config struct {
	// Pane holds the initial state and styling of the split.
	Pane PaneConfig `mapstructure:"pane" yaml:"pane" toml:"pane" json:"pane"`
	// Logging controls log level, format and the demo's session log file.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// PaneConfig mirrors the collapse pane properties that can be set from a file.
type PaneConfig struct {
	// InitialSizes are the relative weights of the two panes, e.g. [1, 2].
	InitialSizes []float64 `mapstructure:"initial_sizes" yaml:"initial_sizes" toml:"initial_sizes" json:"initial_sizes" jsonschema:"minItems=2,maxItems=2"` //nolint:lll // struct tags must stay on one line
	// CollapsedSize is the fixed size, in cells, of a collapsed pane.
	CollapsedSize int `mapstructure:"collapsed_size" yaml:"collapsed_size" toml:"collapsed_size" json:"collapsed_size" jsonschema:"minimum=0"`
	// StartCollapsed starts the demo with the collapsing pane collapsed.
	StartCollapsed bool `mapstructure:"start_collapsed" yaml:"start_collapsed" toml:"start_collapsed" json:"start_collapsed"`
	// Orientation is "vertical" (side by side) or "horizontal" (stacked).
	Orientation string `mapstructure:"orientation" yaml:"orientation" toml:"orientation" json:"orientation" jsonschema:"enum=vertical,enum=horizontal"`
	// Inverted collapses the second pane instead of the first.
	Inverted bool `mapstructure:"inverted" yaml:"inverted" toml:"inverted" json:"inverted"`
	// SeparatorWidth is the thickness of the separator in cells.
	SeparatorWidth int `mapstructure:"separator_width" yaml:"separator_width" toml:"separator_width" json:"separator_width" jsonschema:"minimum=1"`
	// SeparatorColor is a hex color for the separator.
	SeparatorColor string `mapstructure:"separator_color" yaml:"separator_color" toml:"separator_color" json:"separator_color"`
	// MovingSeparatorColor is a hex color for the separator ghost while dragging.
	MovingSeparatorColor string `mapstructure:"moving_separator_color" yaml:"moving_separator_color" toml:"moving_separator_color" json:"moving_separator_color"` //nolint:lll // struct tags must stay on one line
	// CollapseButtonOffset places the button along the separator, in percent (50 is centered).
	CollapseButtonOffset int `mapstructure:"collapse_button_offset" yaml:"collapse_button_offset" toml:"collapse_button_offset" json:"collapse_button_offset" jsonschema:"minimum=0,maximum=100"` //nolint:lll // struct tags must stay on one line
	// CollapseGlyph replaces the default collapse arrow.
	CollapseGlyph string `mapstructure:"collapse_glyph" yaml:"collapse_glyph" toml:"collapse_glyph" json:"collapse_glyph"`
	// ExpandGlyph replaces the default expand arrow.
	ExpandGlyph string `mapstructure:"expand_glyph" yaml:"expand_glyph" toml:"expand_glyph" json:"expand_glyph"`
	// SnapPoints are separator positions, in cells from the left or top edge.
	SnapPoints []int `mapstructure:"snap_points" yaml:"snap_points" toml:"snap_points" json:"snap_points"`
	// SnapRadius is the distance within which the separator snaps.
	SnapRadius int `mapstructure:"snap_radius" yaml:"snap_radius" toml:"snap_radius" json:"snap_radius" jsonschema:"minimum=0"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog writes demo logs to the XDG state directory.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
}
