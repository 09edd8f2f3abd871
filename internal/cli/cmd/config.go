package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/collapsepane/internal/cli/styles"
	"github.com/bnema/collapsepane/internal/infrastructure/config"
)

var (
	schemaWrite   bool
	migrateDryRun bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where the configuration lives, the effective values, its JSON schema,
and bring an older config file up to date with new defaults.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Display every setting after defaults, the config file and
COLLAPSEPANE_* environment variables have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema of the configuration file.

With --write the schema is saved as config.schema.json next to config.toml
so editors with TOML schema support can validate it.`,
	RunE: runConfigSchema,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default keys to the config file",
	Long: `Compare config.toml with the current defaults.

Keys the file does not set are added with their default value and keys
that are no longer read are removed. Values you set are kept. Use
--dry-run to only list the changes.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configMigrateCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configMigrateCmd.Flags().BoolVarP(&migrateDryRun, "dry-run", "n", false, "list changes without writing the file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Manager.GetConfigFile())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	if app.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.ConfigErr))
	}
	fmt.Fprint(out, renderer.RenderConfig(app.Manager.GetConfigFile(), app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !schemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			return err
		}
	}
	path, err := config.WriteSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	path := app.Manager.GetConfigFile()
	migrator := config.NewMigrator()

	plan, err := migrator.Check(path)
	if err != nil {
		return err
	}
	if plan.Empty() {
		fmt.Fprint(out, renderer.RenderUpToDate(path))
		return nil
	}

	fmt.Fprint(out, renderer.RenderMigrationPlan(plan))
	if migrateDryRun {
		return nil
	}

	if _, err := migrator.Migrate(path); err != nil {
		return err
	}
	fmt.Fprint(out, renderer.RenderMigrated(path, plan))
	return nil
}
