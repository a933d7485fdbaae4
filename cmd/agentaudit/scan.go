package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/agentconfig"
	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/checks"
	"github.com/boshu2/agentaudit/internal/config"
	"github.com/boshu2/agentaudit/internal/discovery"
	"github.com/boshu2/agentaudit/internal/fixer"
	"github.com/boshu2/agentaudit/internal/history"
	"github.com/boshu2/agentaudit/internal/logging"
	"github.com/boshu2/agentaudit/internal/notify"
	"github.com/boshu2/agentaudit/internal/report"
	"github.com/boshu2/agentaudit/internal/sanitize"
)

var (
	scanDeep      bool
	scanNoHistory bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Audit the agent installation",
	Long: `Discover the agent installation, run every detector category, and
report findings with a 0-100 score.

Examples:
  agentaudit scan
  agentaudit scan --deep
  agentaudit scan --root /srv/agents/.openclaw -o json`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanDeep, "deep", false, "Raise the log-read budget for thorough scanning")
	scanCmd.Flags().BoolVar(&scanNoHistory, "no-history", false, "Do not record this scan in the history database")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	result, err := executeScan(settings)
	if err != nil {
		return err
	}

	if !scanNoHistory {
		recordHistory(settings, result)
	}
	deliver(settings, result)

	switch GetOutput(settings.Output) {
	case "json":
		return report.JSON(os.Stdout, result)
	case "markdown":
		return report.Markdown(os.Stdout, result)
	default:
		if verbose {
			return report.Verbose(os.Stdout, result)
		}
		return report.Text(os.Stdout, result)
	}
}

// loadSettings merges the auditor config with command-line overrides.
func loadSettings() *config.Config {
	settings := config.Load()
	if rootPath != "" {
		settings.Root = rootPath
	}
	if workspace != "" {
		settings.Workspace = workspace
	}
	if scanDeep {
		settings.Deep = true
	}
	return settings
}

// executeScan runs the full pipeline: locate, discover, parse, check.
// Failing to locate the installation root is the only fatal error.
func executeScan(settings *config.Config) (*audit.Result, error) {
	root, err := discovery.LocateRoot(settings.Root)
	if err != nil {
		return nil, fmt.Errorf("locating agent installation: %w", err)
	}
	logging.Logger.Debugw("located installation", "root", root)

	files, warnings := discovery.Discover(root, settings.Workspace)
	for _, w := range warnings {
		logging.Logger.Warn(w)
	}

	// A config that exists but fails to parse degrades to nil, which
	// skips config-dependent checks as a category.
	var cfg *agentconfig.Config
	if len(files.Config) > 0 {
		cfg, err = agentconfig.Load(files.Config[0])
		if err != nil {
			logging.Logger.Warnw("agent config unparseable; skipping config checks", "error", err)
			cfg = nil
		}
	}

	engine := audit.NewEngine(checks.Registry())
	result := engine.Run(audit.Input{
		Config: cfg,
		Files:  files,
		Deep:   settings.Deep,
	}, agentconfig.DetectToolVersion(root))

	sanitize.Result(result)
	return result, nil
}

// recordHistory stores the scan summary; failure only warns.
func recordHistory(settings *config.Config, result *audit.Result) {
	store, err := history.Open(settings.HistoryPath)
	if err != nil {
		logging.Logger.Warnw("history unavailable", "error", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(result); err != nil {
		logging.Logger.Warnw("recording scan failed", "error", err)
	}
}

// deliver posts the result to the configured webhook and telemetry
// endpoints. Failures are logged, never fatal.
func deliver(settings *config.Config, result *audit.Result) {
	if settings.WebhookURL == "" && settings.TelemetryURL == "" {
		return
	}
	client := notify.NewClient()
	ctx := context.Background()
	if settings.WebhookURL != "" {
		if err := client.SendWebhook(ctx, settings.WebhookURL, result); err != nil {
			logging.Logger.Warnw("webhook delivery failed", "error", err)
		}
	}
	if settings.TelemetryURL != "" {
		if err := client.SendTelemetry(ctx, settings.TelemetryURL, result); err != nil {
			logging.Logger.Warnw("telemetry delivery failed", "error", err)
		}
	}
}

// applyFixes is shared with the fix command.
func applyFixes(result *audit.Result, allowBehavioral bool) []fixer.Outcome {
	return fixer.Apply(result.Findings, allowBehavioral)
}
