// Package config provides the auditor's own settings (not the audited
// agent's configuration). Settings are loaded from (highest to lowest
// priority):
// 1. Command-line flags
// 2. Environment variables (AGENTAUDIT_*)
// 3. Home config (~/.agentaudit/config.yaml)
// 4. Defaults
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all agentaudit settings.
type Config struct {
	// Output controls the default report format (text, json, markdown).
	Output string `yaml:"output" json:"output"`

	// Root overrides the agent installation root to audit.
	Root string `yaml:"root" json:"root"`

	// Workspace overrides the workspace root to audit.
	Workspace string `yaml:"workspace" json:"workspace"`

	// Deep raises the capped-read budget for log scanning.
	Deep bool `yaml:"deep" json:"deep"`

	// HistoryPath is the sqlite scan-history database location.
	HistoryPath string `yaml:"history_path" json:"history_path"`

	// WebhookURL, when set, receives the sanitized result after a scan.
	WebhookURL string `yaml:"webhook_url" json:"webhook_url"`

	// TelemetryURL, when set, receives the stripped telemetry payload.
	TelemetryURL string `yaml:"telemetry_url" json:"telemetry_url"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:      "text",
		HistoryPath: filepath.Join(configDir(), "history.db"),
	}
}

// Load builds the effective configuration from defaults, the home
// config file, and environment variables. A missing or unreadable
// config file falls back to defaults silently.
func Load() *Config {
	cfg := DefaultConfig()

	if path := os.Getenv("AGENTAUDIT_CONFIG"); path != "" {
		loadFile(cfg, path)
	} else {
		loadFile(cfg, filepath.Join(configDir(), "config.yaml"))
	}

	applyEnv(cfg)
	return cfg
}

// loadFile merges the YAML file at path into cfg, ignoring errors.
func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, cfg)
}

// applyEnv overrides cfg fields from AGENTAUDIT_* variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("AGENTAUDIT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("AGENTAUDIT_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("AGENTAUDIT_WORKSPACE"); v != "" {
		cfg.Workspace = v
	}
	if v := os.Getenv("AGENTAUDIT_DEEP"); v != "" {
		cfg.Deep = isTruthy(v)
	}
	if v := os.Getenv("AGENTAUDIT_HISTORY_PATH"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("AGENTAUDIT_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("AGENTAUDIT_TELEMETRY_URL"); v != "" {
		cfg.TelemetryURL = v
	}
}

// configDir returns ~/.agentaudit, or a relative fallback when the
// home directory cannot be determined.
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".agentaudit"
	}
	return filepath.Join(home, ".agentaudit")
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
