package config

// Default configuration constants
const (
	// Pane defaults
	defaultCollapsedSize        = 10 // cells
	defaultSeparatorWidth       = 1  // cells
	defaultSeparatorColor       = "#000000"
	defaultMovingSeparatorColor = "#808080"
	defaultCollapseButtonOffset = 50 // percent
	defaultSnapRadius           = 20 // cells
	defaultOrientation          = OrientationVertical

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Orientation values accepted in pane.orientation.
const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Pane: PaneConfig{
			InitialSizes:         []float64{1, 2},
			CollapsedSize:        defaultCollapsedSize,
			Orientation:          defaultOrientation,
			SeparatorWidth:       defaultSeparatorWidth,
			SeparatorColor:       defaultSeparatorColor,
			MovingSeparatorColor: defaultMovingSeparatorColor,
			CollapseButtonOffset: defaultCollapseButtonOffset,
			SnapPoints:           []int{},
			SnapRadius:           defaultSnapRadius,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
		},
	}
}
