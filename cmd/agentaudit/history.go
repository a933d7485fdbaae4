package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boshu2/agentaudit/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past scan scores",
	Long: `List recent scans from the local history database, newest first.

Examples:
  agentaudit history
  agentaudit history --limit 50`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	settings := loadSettings()
	store, err := history.Open(settings.HistoryPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No scans recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSCORE\tFINDINGS\tSUGGESTIONS\tFILES\tPLATFORM")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Score, e.Findings, e.Suggestions, e.FilesScanned, e.Platform)
	}
	return w.Flush()
}
