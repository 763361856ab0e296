package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all results to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		dest := args[0]
		if err := store.ExportAll(dest); err != nil {
			fmt.Fprintf(os.Stderr, "Could not export to %s: %v\n", dest, err)
			return nil
		}

		fmt.Printf("Exported %d result(s) to %s\n", store.Len(), dest)
		return nil
	},
}
