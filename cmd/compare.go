package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/report"
	"github.com/clinicli/scl90/internal/results"
)

var compareCmd = &cobra.Command{
	Use:   "compare <participant>",
	Short: "Compare a participant's results over time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		participant := args[0]
		records := store.Query(participant)

		cmp, err := results.Compare(records)
		if err != nil {
			if errors.Is(err, results.ErrInsufficientRecords) {
				fmt.Printf("Need at least two results for %q to compare (have %d).\n",
					participant, len(records))
				return nil
			}
			return err
		}

		fmt.Print(report.ComparisonTable(cmp))
		return nil
	},
}
