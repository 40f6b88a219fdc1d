// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/investflow/internal/transition"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for investflow.
type Config struct {
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
	DataDir       string `mapstructure:"data_dir" yaml:"data_dir"`
	Journal       bool   `mapstructure:"journal" yaml:"journal"`
	Resume        bool   `mapstructure:"resume" yaml:"resume"`
	ReducedMotion bool   `mapstructure:"reduced_motion" yaml:"reduced_motion"`
	FadeOutMS     int    `mapstructure:"fade_out_ms" yaml:"fade_out_ms"`
	FadeInMS      int    `mapstructure:"fade_in_ms" yaml:"fade_in_ms"`
	RevealMS      int    `mapstructure:"reveal_ms" yaml:"reveal_ms"`
	FrameMS       int    `mapstructure:"frame_ms" yaml:"frame_ms"`
}

// keys lists every config key; each is bound to INVESTFLOW_<KEY>.
var keys = []string{
	"log_level",
	"log_file",
	"data_dir",
	"journal",
	"resume",
	"reduced_motion",
	"fade_out_ms",
	"fade_in_ms",
	"reveal_ms",
	"frame_ms",
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	timing := transition.DefaultTiming()
	return &Config{
		LogLevel:  "info",
		DataDir:   ".investflow",
		Journal:   true,
		Resume:    false,
		FadeOutMS: int(timing.FadeOut / time.Millisecond),
		FadeInMS:  int(timing.FadeIn / time.Millisecond),
		RevealMS:  int(timing.Reveal / time.Millisecond),
		FrameMS:   int(timing.Frame / time.Millisecond),
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults.
// Flags are applied by the caller on the returned Config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("investflow")

	def := Default()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("journal", def.Journal)
	v.SetDefault("resume", def.Resume)
	v.SetDefault("reduced_motion", def.ReducedMotion)
	v.SetDefault("fade_out_ms", def.FadeOutMS)
	v.SetDefault("fade_in_ms", def.FadeInMS)
	v.SetDefault("reveal_ms", def.RevealMS)
	v.SetDefault("frame_ms", def.FrameMS)

	v.SetEnvPrefix("INVESTFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit bindings so bool/int values from the environment decode.
	for _, key := range keys {
		if err := v.BindEnv(key, "INVESTFLOW_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail later in odd ways.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	for name, ms := range map[string]int{
		"fade_out_ms": c.FadeOutMS,
		"fade_in_ms":  c.FadeInMS,
		"reveal_ms":   c.RevealMS,
		"frame_ms":    c.FrameMS,
	} {
		if ms < 0 {
			return fmt.Errorf("%s cannot be negative (got %d)", name, ms)
		}
	}
	return nil
}

// Timing returns the transition pacing described by the config. Reduced
// motion compresses every delay to zero.
func (c *Config) Timing() transition.Timing {
	if c.ReducedMotion {
		return transition.ReducedMotion()
	}
	return transition.Timing{
		FadeOut: time.Duration(c.FadeOutMS) * time.Millisecond,
		FadeIn:  time.Duration(c.FadeInMS) * time.Millisecond,
		Reveal:  time.Duration(c.RevealMS) * time.Millisecond,
		Frame:   time.Duration(c.FrameMS) * time.Millisecond,
	}
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/investflow/investflow.yml or $XDG_CONFIG_HOME/investflow/investflow.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "investflow", "investflow.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "investflow", "investflow.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "investflow.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
