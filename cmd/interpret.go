package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clinicli/scl90/internal/interpret"
	"github.com/clinicli/scl90/internal/llm"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret <participant>",
	Short: "Generate a plain-language narrative for the latest result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		participant := args[0]
		rec := store.Latest(participant)
		if rec == nil {
			fmt.Printf("No results for %q.\n", participant)
			return nil
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Set an API key (e.g. ANTHROPIC_API_KEY) to enable narratives.")
			return nil
		}

		svc := interpret.NewService(provider, interpret.DefaultConfig())
		narrative, err := svc.Narrate(ctx, rec)
		if err != nil {
			return fmt.Errorf("generate narrative: %w", err)
		}

		fmt.Printf("%s  %s\n\n", rec.Participant, rec.Timestamp.Format("2006-01-02 15:04"))
		fmt.Println(narrative.Summary)
		if len(narrative.Elevated) > 0 {
			fmt.Printf("\nElevated: %s\n", strings.Join(narrative.Elevated, ", "))
		}
		fmt.Printf("\n%s\n", narrative.Note)
		return nil
	},
}
