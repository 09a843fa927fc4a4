package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the most-launched snippets",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVarP(&statsLimit, "limit", "n", 10, "maximum number of titles")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	d, err := ensureDeps()
	if err != nil {
		return err
	}

	top, err := d.UsageStore.Top(cmd.Context(), statsLimit)
	if err != nil {
		return fmt.Errorf("reading usage history: %w", err)
	}

	if len(top) == 0 {
		cmd.Println("No launches recorded yet.")
		return nil
	}

	cmd.Println("Most launched:")
	cmd.Println()
	for i, sum := range top {
		cmd.Printf("  [%d] %s - %d launch(es), last %s\n",
			i+1, sum.Title, sum.LaunchCount, sum.LastUsed.Format("2006-01-02 15:04"))
	}

	return nil
}
