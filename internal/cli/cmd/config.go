package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/kiosk/internal/cli/styles"
	"github.com/bnema/kiosk/internal/infrastructure/config"
)

var (
	configFormat  string
	configShowAll bool
	configYes     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use and any problems found in it",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration the browser would run with: defaults, then the
file, then KIOSK_* environment variables, then flags. The default password
is masked unless --reveal is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config file",
	Long: `Write the default configuration to path, or to the per-user location
when no path is given. An existing file is only replaced after confirmation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $VISUAL or $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configInitCmd, configEditCmd)

	configShowCmd.Flags().StringVar(&configFormat, "format", string(config.FormatYAML), "output format: yaml, toml")
	configShowCmd.Flags().BoolVar(&configShowAll, "reveal", false, "show the default password")
	configInitCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "overwrite without asking")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.Manager.GetConfigFile()
	exists := path != ""
	if !exists {
		resolved, err := app.Manager.ResolvePath()
		switch {
		case err == nil:
			path = resolved
		case errors.Is(err, config.ErrNoConfigFile):
			path = config.UserConfigFile()
		default:
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}

	fmt.Print(renderer.RenderPath(path, exists))
	fmt.Print(renderer.RenderWarnings(app.Manager.Warnings()))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := app.Config
	if !configShowAll {
		cfg = config.Redacted(cfg)
	}
	data, err := config.Encode(cfg, config.Format(configFormat))
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, args []string) error {
	renderer := styles.NewConfigRenderer(app.Theme)

	path := config.UserConfigFile()
	if len(args) == 1 {
		path = args[0]
	}

	overwrite := configYes
	if _, err := os.Stat(path); err == nil && !overwrite {
		ok, err := styles.RunConfirm(app.Theme, fmt.Sprintf("%s exists. Replace it with defaults?", path))
		if err != nil {
			return fmt.Errorf("confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Print(renderer.RenderCanceled())
			return nil
		}
		overwrite = true
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check %s: %w", path, err)
	}

	if err := config.WriteDefault(path, overwrite); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Print(renderer.RenderCreated(path))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path := app.Manager.GetConfigFile()
	if path == "" {
		path = config.UserConfigFile()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := config.WriteDefault(path, false); err != nil {
				return err
			}
		}
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
