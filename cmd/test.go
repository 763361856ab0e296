package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/app"
)

var testCmd = &cobra.Command{
	Use:   "test <participant>",
	Short: "Administer the questionnaire to a participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		return app.Run(app.Options{
			Store:       store,
			Participant: args[0],
		})
	},
}
