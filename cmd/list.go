package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored results",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		if store.Len() == 0 {
			fmt.Println("No results recorded yet. Run 'scl90 test <participant>' to administer the questionnaire.")
			return nil
		}

		fmt.Print(report.ResultsTable(store.All()))
		return nil
	},
}
