package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/ui/layout"
)

var (
	dragOpts       layoutOptions
	dragFrom       int
	dragTo         int
	dragSnapPoints []int
	dragSnapRadius int
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Simulate dragging the separator",
	Long: `Run one press, move and release of the separator without a terminal
UI and print the offset, the new sizes, and whether the pane collapses.

The press happens on the separator unless --from is given. Unset layout
and snapping flags use the values from config.toml.

Examples:
  collapsepane drag --sizes 1,2 -n 31 --to 15
  collapsepane drag --sizes 1,1 -n 81 --to 33 --snap 30,60 --snap-radius 5`,
	Args: cobra.NoArgs,
	RunE: runDrag,
}

func init() {
	rootCmd.AddCommand(dragCmd)
	dragOpts.register(dragCmd)
	f := dragCmd.Flags()
	f.IntVar(&dragFrom, "from", 0, "pointer position of the press (default: the separator)")
	f.IntVar(&dragTo, "to", 0, "pointer position of the release")
	f.IntSliceVar(&dragSnapPoints, "snap", nil, "snap points in cells from the start edge")
	f.IntVar(&dragSnapRadius, "snap-radius", 0, "snap radius in cells")
	_ = dragCmd.MarkFlagRequired("to")
}

// dragResult is what one simulated gesture produced.
type dragResult struct {
	captured bool
	offset   int
	release  layout.Release
}

func simulateDrag(params splitParams, from, to int, snapPoints []int, radius int) dragResult {
	cells := params.template().Resolve(params.length)

	var d layout.Drag
	if !d.Capture(from, params.collapsed) {
		return dragResult{}
	}
	offset := d.Move(to, cells[0], snapPoints, radius)
	return dragResult{
		captured: true,
		offset:   offset,
		release:  d.Release(cells[0], cells[2], params.inverted, params.collapsedSize),
	}
}

func runDrag(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	changed := cmd.Flags().Changed
	params, err := dragOpts.resolve(changed, app.Config.Pane)
	if err != nil {
		return err
	}

	from := params.template().Resolve(params.length)[0]
	if changed("from") {
		from = dragFrom
	}
	snapPoints := app.Config.Pane.SnapPoints
	if changed("snap") {
		snapPoints = dragSnapPoints
	}
	radius := app.Config.Pane.SnapRadius
	if changed("snap-radius") {
		radius = dragSnapRadius
	}

	res := simulateDrag(params, from, dragTo, snapPoints, radius)
	renderer := styles.NewTemplateRenderer(app.Theme)
	if !res.captured {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderIgnoredDrag())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderDrag(res.offset, params.orientation, res.release))
	return nil
}
