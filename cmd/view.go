package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/report"
)

var viewCmd = &cobra.Command{
	Use:   "view <participant>",
	Short: "Show score breakdowns for a participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		participant := args[0]
		latestOnly, _ := cmd.Flags().GetBool("latest")

		if latestOnly {
			rec := store.Latest(participant)
			if rec == nil {
				fmt.Printf("No results for %q.\n", participant)
				return nil
			}
			fmt.Print(report.RecordDetail(rec))
			return nil
		}

		records := store.Query(participant)
		if len(records) == 0 {
			fmt.Printf("No results for %q.\n", participant)
			return nil
		}
		for i, rec := range records {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(report.RecordDetail(rec))
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().Bool("latest", false, "Show only the most recent result")
}
