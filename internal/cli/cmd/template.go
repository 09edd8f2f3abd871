package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
	"github.com/bnema/collapsepane/internal/ui/layout"
)

// layoutOptions are the flags shared by template and drag. Flags left
// unset fall back to the pane section of the config.
type layoutOptions struct {
	sizes          []float64
	collapsedSize  int
	collapsed      bool
	inverted       bool
	separatorWidth int
	orientation    string
	length         int
}

type splitParams struct {
	sizes          layout.Sizes
	collapsedSize  int
	collapsed      bool
	inverted       bool
	separatorWidth int
	orientation    layout.Orientation
	length         int
}

func (o *layoutOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64SliceVar(&o.sizes, "sizes", nil, "relative pane sizes, e.g. 1,2")
	f.IntVar(&o.collapsedSize, "collapsed-size", 0, "size of a collapsed pane in cells")
	f.BoolVar(&o.collapsed, "collapsed", false, "collapse the collapsing pane")
	f.BoolVar(&o.inverted, "inverted", false, "collapse the second pane instead of the first")
	f.IntVar(&o.separatorWidth, "separator-width", 0, "separator thickness in cells")
	f.StringVar(&o.orientation, "orientation", "", "vertical (side by side) or horizontal (stacked)")
	f.IntVarP(&o.length, "length", "n", 80, "cells along the split axis")
}

// resolve merges the flags with cfg. changed reports whether a flag was set.
func (o *layoutOptions) resolve(changed func(string) bool, cfg config.PaneConfig) (splitParams, error) {
	params := splitParams{
		collapsedSize:  cfg.CollapsedSize,
		collapsed:      cfg.StartCollapsed,
		inverted:       cfg.Inverted,
		separatorWidth: cfg.SeparatorWidth,
		orientation:    layout.ParseOrientation(cfg.Orientation),
		length:         o.length,
	}
	if len(cfg.InitialSizes) == 2 {
		params.sizes = layout.Sizes{cfg.InitialSizes[0], cfg.InitialSizes[1]}
	}

	if changed("sizes") {
		if len(o.sizes) != 2 {
			return params, fmt.Errorf("--sizes needs exactly 2 values, got %d", len(o.sizes))
		}
		params.sizes = layout.Sizes{o.sizes[0], o.sizes[1]}
	}
	if changed("collapsed-size") {
		params.collapsedSize = o.collapsedSize
	}
	if changed("collapsed") {
		params.collapsed = o.collapsed
	}
	if changed("inverted") {
		params.inverted = o.inverted
	}
	if changed("separator-width") {
		params.separatorWidth = o.separatorWidth
	}
	if changed("orientation") {
		switch o.orientation {
		case config.OrientationVertical, config.OrientationHorizontal:
			params.orientation = layout.ParseOrientation(o.orientation)
		default:
			return params, fmt.Errorf("--orientation must be vertical or horizontal, got %q", o.orientation)
		}
	}

	if params.length < 0 {
		return params, fmt.Errorf("--length must be non-negative")
	}
	if params.collapsedSize < 0 {
		return params, fmt.Errorf("--collapsed-size must be non-negative")
	}
	return params, nil
}

func (s splitParams) template() layout.Template {
	return layout.GridTemplate(s.sizes, s.collapsedSize, s.collapsed, s.inverted, s.separatorWidth)
}

var (
	templateOpts  layoutOptions
	templatePlain bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the grid template for a pane state",
	Long: `Print the grid template of the split and how a given length is
distributed over its tracks. Unset flags use the values from config.toml.

Examples:
  collapsepane template --sizes 1,2 -n 31
  collapsepane template --collapsed --inverted --collapsed-size 100 --plain`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateOpts.register(templateCmd)
	templateCmd.Flags().BoolVar(&templatePlain, "plain", false, "print only the template string")
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	params, err := templateOpts.resolve(cmd.Flags().Changed, app.Config.Pane)
	if err != nil {
		return err
	}

	tmpl := params.template()
	if templatePlain {
		fmt.Fprintln(cmd.OutOrStdout(), tmpl.String())
		return nil
	}

	renderer := styles.NewTemplateRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.Render(tmpl, params.orientation, params.length))
	return nil
}
