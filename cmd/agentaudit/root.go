package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/logging"
)

var (
	// Global flags
	verbose   bool
	output    string
	rootPath  string
	workspace string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agentaudit",
	Short: "Security auditor for local AI-agent installations",
	Long: `agentaudit inspects an agent installation's configuration,
credentials, and session logs, and reports structured findings with
severity, confidence, and remediation guidance, compressed into a
single 0-100 score.

Core Commands:
  scan         Audit the installation and report findings
  fix          Apply auto-fixable remediations (with backups)
  history      Show past scan scores
  watch        Re-run the scan on a cron schedule
  version      Show version information`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Report format (text, json, markdown)")
	rootCmd.PersistentFlags().StringVar(&rootPath, "root", "", "Agent installation root (default: probe ~/.openclaw, ~/.clawdbot)")
	rootCmd.PersistentFlags().StringVar(&workspace, "workspace", "", "Workspace root (default: <root>/workspace)")
}

// GetOutput returns the effective output format for use by subcommands.
func GetOutput(fallback string) string {
	if output != "" {
		return output
	}
	if fallback != "" {
		return fallback
	}
	return "text"
}
