package main

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/logging"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the scan on a cron schedule",
	Long: `Run the scan repeatedly on a cron schedule and log the score after
each run. Results are recorded in the history database so trends can be
reviewed with the history command.

Examples:
  agentaudit watch
  agentaudit watch --schedule "0 */6 * * *"`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "@hourly", "Cron schedule for repeated scans")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings := loadSettings()

	lastScore := -1
	job := func() {
		result, err := executeScan(settings)
		if err != nil {
			logging.Logger.Errorw("scheduled scan failed", "error", err)
			return
		}
		recordHistory(settings, result)
		deliver(settings, result)

		if lastScore >= 0 && result.Score != lastScore {
			logging.Logger.Warnw("score changed",
				"previous", lastScore, "current", result.Score,
				"findings", len(result.Findings))
		} else {
			logging.Logger.Infow("scan complete",
				"score", result.Score, "findings", len(result.Findings))
		}
		lastScore = result.Score
	}

	c := cron.New()
	if _, err := c.AddFunc(watchSchedule, job); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", watchSchedule, err)
	}

	fmt.Printf("Watching on schedule %q (ctrl-c to stop)\n", watchSchedule)
	job() // one immediate run before the schedule takes over
	c.Run()
	return nil
}
