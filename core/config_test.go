package core

import (
	"os"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig error: %v", err)
	}
	if cfg.OutputDir != "build" {
		t.Errorf("expected OutputDir default 'build', got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != LogLevelInfo {
		t.Errorf("expected LogLevel default %q, got %q", LogLevelInfo, cfg.LogLevel)
	}
	if cfg.Watch {
		t.Error("expected Watch default false")
	}
}

func TestNewConfigFromYAML(t *testing.T) {
	yamlContent := `
workflow_file: workflow.yaml
output_dir: out
log_level: debug
watch: true
`
	tmpFile, err := os.CreateTemp("", "sirocco_config_*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	if _, err := tmpFile.WriteString(yamlContent); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	tmpFile.Close()

	cfg, err := NewConfig(tmpFile.Name())
	if err != nil {
		t.Fatalf("NewConfig error: %v", err)
	}
	if cfg.WorkflowFile != "workflow.yaml" {
		t.Errorf("expected WorkflowFile 'workflow.yaml', got %q", cfg.WorkflowFile)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("expected OutputDir 'out', got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got %q", cfg.LogLevel)
	}
	if !cfg.Watch {
		t.Error("expected Watch true")
	}
}

func TestNewConfigEnvironmentOverridesFile(t *testing.T) {
	yamlContent := "output_dir: from_file\n"
	tmpFile, err := os.CreateTemp("", "sirocco_config_*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString(yamlContent)
	tmpFile.Close()

	os.Setenv("SIROCCO_OUTPUT_DIR", "from_env")
	defer os.Unsetenv("SIROCCO_OUTPUT_DIR")

	cfg, err := NewConfig(tmpFile.Name())
	if err != nil {
		t.Fatalf("NewConfig error: %v", err)
	}
	if cfg.OutputDir != "from_env" {
		t.Errorf("expected environment to override file, got %q", cfg.OutputDir)
	}
}

func TestNewConfigMissingFileIsNotFatal(t *testing.T) {
	if _, err := NewConfig("does-not-exist.yaml"); err != nil {
		t.Errorf("expected a missing config file to be handled gracefully, got %v", err)
	}
}

func TestNewConfigInvalidYAML(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "sirocco_config_*.yaml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString("output_dir: [unterminated\n")
	tmpFile.Close()

	if _, err := NewConfig(tmpFile.Name()); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
