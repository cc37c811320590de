package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config is the sirocco CLI's own tool configuration — not the workflow IR
// the core unrolls, but the settings that govern how the CLI loads and
// reports on it. Loaded with the same file-then-environment overlay the
// teacher's planner config uses.
type Config struct {
	// WorkflowFile is the path to the IR document to unroll.
	WorkflowFile string `yaml:"workflow_file" env:"SIROCCO_WORKFLOW_FILE"`

	// OutputDir is where a future backend would be told to stage job
	// scripts; it is loaded here, but neither the core nor the CLI reads it.
	OutputDir string `yaml:"output_dir" env:"SIROCCO_OUTPUT_DIR"`

	// LogLevel takes the Logger level names. It is loaded from the config
	// file and the environment, but Loggers read their level from the
	// environment only; this field is not applied to them.
	LogLevel string `yaml:"log_level" env:"SIROCCO_LOG_LEVEL"`

	// Watch is loaded but not read by the CLI; the re-unroll loop runs
	// only under the `watch` subcommand, whatever this field says.
	Watch bool `yaml:"watch" env:"SIROCCO_WATCH"`
}

// NewConfig builds a Config from defaults, overlaid by each YAML file in
// pathConfigs (missing files are skipped, not fatal), then by environment
// variables.
func NewConfig(pathConfigs ...string) (Config, error) {
	cfg := DefaultConfig()

	for _, path := range pathConfigs {
		bts, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, fmt.Errorf("read file: %w", err)
		}
		if len(strings.TrimSpace(string(bts))) == 0 {
			continue
		}
		if err := yaml.Unmarshal(bts, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env parse: %w", err)
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = DefaultConfig().OutputDir
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = DefaultConfig().LogLevel
	}

	return cfg, nil
}
