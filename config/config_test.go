package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return dir
}

func TestLoadSchedulerConfig(t *testing.T) {
	dir := writeConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 3
report:
  format: text
`)

	cfg, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.RoundRobinTimeQuantum != 3 {
		t.Errorf("Expected time quantum 3, got %d", cfg.RoundRobinTimeQuantum)
	}
	if cfg.ReportFormat != "text" {
		t.Errorf("Expected report format text, got %s", cfg.ReportFormat)
	}
}

func TestLoadSchedulerConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "port: 9000\n")

	cfg, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.RoundRobinTimeQuantum != 5 {
		t.Errorf("Expected default time quantum 5, got %d", cfg.RoundRobinTimeQuantum)
	}
	if cfg.ReportFormat != "table" {
		t.Errorf("Expected default report format table, got %s", cfg.ReportFormat)
	}
}

func TestLoadSchedulerConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "port: 9000\n")
	t.Setenv("SCHEDULER_PORT", "7000")

	cfg, err := LoadSchedulerConfig(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Port != 7000 {
		t.Errorf("Expected port 7000 from the environment, got %d", cfg.Port)
	}
}

func TestLoadSchedulerConfig_InvalidQuantum(t *testing.T) {
	dir := writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n")

	if _, err := LoadSchedulerConfig(dir); err == nil {
		t.Error("Expected an error for a zero time quantum")
	}
}

func TestLoadSchedulerConfig_MissingFile(t *testing.T) {
	if _, err := LoadSchedulerConfig(t.TempDir()); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
