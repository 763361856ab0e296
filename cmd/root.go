package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/results"
)

var rootCmd = &cobra.Command{
	Use:   "scl90",
	Short: "SCL-90-R questionnaire administration and scoring",
	Long:  "scl90 — terminal tool that administers the SCL-90-R symptom questionnaire, scores the nine clinical dimensions and global indices, and tracks results over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation shows usage and exits cleanly.
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to results file (overrides SCL90_DATA env var)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDataPath returns the results file path using --data flag
// (highest priority), then SCL90_DATA env var, then the default XDG
// path.
func resolveDataPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, results.EnsureDir(p)
	}
	return results.DefaultDataPath()
}

// openStore opens the results store, downgrading an unreadable file to
// a warning. The returned store is always usable.
func openStore(cmd *cobra.Command) (*results.Store, error) {
	path, err := resolveDataPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}

	store, err := results.Open(path)
	if err != nil {
		if errors.Is(err, results.ErrStorageUnreadable) {
			fmt.Fprintln(os.Stderr, "Warning:", err)
			fmt.Fprintln(os.Stderr, "Starting with an empty result set.")
			return store, nil
		}
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}
