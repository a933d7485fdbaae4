package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fixBehavioral bool
	fixDryRun     bool
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Apply auto-fixable remediations",
	Long: `Re-run the scan and apply the remediations findings mark as
auto-fixable. Every modified file gets a timestamped backup first.
Fixes that change agent behavior (not just file metadata) require
--behavioral.

Examples:
  agentaudit fix
  agentaudit fix --dry-run
  agentaudit fix --behavioral`,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixBehavioral, "behavioral", false, "Also apply behavior-changing fixes")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "List applicable fixes without touching anything")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	result, err := executeScan(settings)
	if err != nil {
		return err
	}

	if fixDryRun {
		n := 0
		for _, f := range result.Findings {
			if !f.AutoFixable {
				continue
			}
			fmt.Printf("[dry-run] would fix %s (%s): %s\n", f.ID, f.FixType, f.File)
			n++
		}
		if n == 0 {
			fmt.Println("[dry-run] nothing auto-fixable")
		}
		return nil
	}

	outcomes := applyFixes(result, fixBehavioral)
	if len(outcomes) == 0 {
		fmt.Println("Nothing auto-fixable.")
		return nil
	}

	failed := 0
	for _, o := range outcomes {
		status := "skipped"
		if o.Applied {
			status = "fixed"
		}
		fmt.Printf("%-7s %s  %s", status, o.FindingID, o.File)
		if o.Backup != "" {
			fmt.Printf("  (backup: %s)", o.Backup)
		}
		if !o.Applied {
			fmt.Printf("  (%s)", o.Detail)
			failed++
		}
		fmt.Println()
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d fix(es) not applied\n", failed)
	}
	return nil
}
