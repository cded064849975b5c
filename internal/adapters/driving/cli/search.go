package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Find relevant passages without generating an answer",
	Long: `Scores every stored passage against the query by keyword overlap and
prints the best matches with their source documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of matches (default 3)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output matches as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	query := args[0]
	matches, err := askService.Sources(context.Background(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputMatchesJSON(cmd, matches)
	}
	return outputMatchesText(cmd, matches)
}

func outputMatchesJSON(cmd *cobra.Command, matches []domain.RelevanceMatch) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchesText(cmd *cobra.Command, matches []domain.RelevanceMatch) error {
	if len(matches) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	cmd.Println("Matches:")
	cmd.Println()
	for i := range matches {
		name := matches[i].SourceName
		if name == "" {
			name = matches[i].SourceID
		}

		cmd.Printf("  [%d] %s, chunk %d (%.2f)\n", i+1, name, matches[i].ChunkIndex, matches[i].Score)
		cmd.Printf("      %s\n", matches[i].Text)
		cmd.Println()
	}
	return nil
}
