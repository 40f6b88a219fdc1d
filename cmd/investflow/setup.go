package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mark3labs/investflow/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a default investflow config file",
	Long: `Write an investflow config file holding the default settings.

The file goes to $XDG_CONFIG_HOME/investflow/investflow.yml unless --project
is given, in which case investflow.yml is written to the current directory
and takes precedence over the global file.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Write investflow.yml in the current directory")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Replace an existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	path, write := config.GlobalPath(), config.WriteGlobal
	if setupFlags.project {
		path, write = config.ProjectPath(), config.WriteProject
	}

	if !setupFlags.force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to replace it)", path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	cfg := config.Default()
	if err := write(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to %s\n", path)
	fmt.Fprintf(out, "  data_dir:       %s\n", cfg.DataDir)
	fmt.Fprintf(out, "  journal:        %t\n", cfg.Journal)
	fmt.Fprintf(out, "  reduced_motion: %t\n", cfg.ReducedMotion)
	fmt.Fprintln(out, "\nRun 'investflow invest' to start an investment.")
	return nil
}
