package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/collapsepane/internal/cli/model"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
	"github.com/bnema/collapsepane/internal/logging"
)

var (
	demoOpts       layoutOptions
	demoSnapPoints []int
	demoNoWatch    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive split pane demo",
	Long: `Open a full screen split with two scrollable panes.

Drag the separator with the mouse, press its button to collapse or expand,
or use the keys listed at the bottom. Flags override config.toml for this
run; edits to config.toml are applied while the demo is open.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoOpts.register(demoCmd)
	demoCmd.Flags().IntSliceVar(&demoSnapPoints, "snap", nil, "snap points in cells from the start edge")
	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "do not reload config.toml on change")
}

// demoConfig applies the command line overrides on top of cfg.
func demoConfig(changed func(string) bool, cfg *config.Config) (*config.Config, error) {
	params, err := demoOpts.resolve(changed, cfg.Pane)
	if err != nil {
		return nil, err
	}

	out := *cfg
	out.Pane.InitialSizes = []float64{params.sizes[0], params.sizes[1]}
	out.Pane.CollapsedSize = params.collapsedSize
	out.Pane.StartCollapsed = params.collapsed
	out.Pane.Inverted = params.inverted
	out.Pane.SeparatorWidth = params.separatorWidth
	out.Pane.Orientation = params.orientation.String()
	out.Pane.SnapPoints = append([]int(nil), cfg.Pane.SnapPoints...)
	if changed("snap") {
		out.Pane.SnapPoints = append([]int(nil), demoSnapPoints...)
	}
	return &out, nil
}

func runDemo(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg, err := demoConfig(cmd.Flags().Changed, app.Config)
	if err != nil {
		return err
	}

	logPath, err := app.UseSessionLog()
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	log := logging.FromContext(app.Ctx())
	app.Manager.SetLogger(*log)
	log.Info().Str("log_file", logPath).Str("config", app.Manager.GetConfigFile()).Msg("demo starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := model.NewDemoModel(app.Ctx(), app.Theme, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !demoNoWatch {
		app.Manager.OnConfigChange(func(c *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: c})
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("demo finished")
	if logPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "session log: %s\n", logPath)
	}
	return nil
}
