package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

var (
	askMaxResults   int
	askSourceBudget int
	askJSON         bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the library",
	Long: `Selects the passages most relevant to the question, assembles them
into a bounded context, and generates an answer citing its sources.

Without a configured language model the matched passages are returned
directly.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askMaxResults, "max-results", "n", 0, "maximum number of passages to draw on (default 3)")
	askCmd.Flags().IntVar(&askSourceBudget, "source-budget", 0, "per-source character budget for context (default 1500)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	question := args[0]
	opts := domain.AskOptions{
		MaxResults:   askMaxResults,
		SourceBudget: askSourceBudget,
	}

	answer, err := askService.Ask(context.Background(), question, opts)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}
	return outputAnswerText(cmd, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer *domain.Answer) error {
	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer *domain.Answer) error {
	cmd.Println(answer.Text)

	if len(answer.Sources) == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println("Sources:")
	for _, src := range answer.Sources {
		name := src.DocumentName
		if name == "" {
			name = src.DocumentID
		}
		cmd.Printf("  %s (chunk %d, %.2f)\n", name, src.ChunkIndex, src.Score)
	}
	return nil
}
