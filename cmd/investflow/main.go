package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/investflow/internal/config"
	"github.com/mark3labs/investflow/internal/logger"
	"github.com/mark3labs/investflow/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█ █▄ █ █ █ █▀▀ █▀▀ ▀█▀ █▀▀ █   █▀█ █ █ █"
	logoText2 = "█ █ ▀█ ▀▄▀ ██▄ ▄▄█  █  █▀  █▄▄ █▄█ ▀▄▀▄▀"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "investflow",
	Short: "Terminal investment wizard with a journaled, resumable flow",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// loadConfig loads configuration and points the logger at it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	if !config.Exists() {
		logger.Debug("No config file found, using defaults (run 'investflow setup' to create one)")
	}
	return cfg, nil
}

func init() {
	rootCmd.Long = renderLogo() + `

investflow walks an investor through transfer-method selection, identity
verification, document review and signing, confirmation and wire funding in
a full-screen terminal wizard.

Sessions are journaled to an embedded NATS JetStream log under the data
directory so an unfinished investment can be resumed with --resume.`

	rootCmd.AddCommand(investCmd)
	rootCmd.AddCommand(stepsCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(setupCmd)
}
