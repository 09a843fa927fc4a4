package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

var (
	searchScope string
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Rank snippets for a query without launching",
	Long: `Ranks the snippet collection for the given query and prints the
results. Exact prefix matches rank above word-boundary matches,
substrings and fuzzy subsequence hits.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchScope, "scope", "all", "search scope: all, title or content")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	d, err := ensureDeps()
	if err != nil {
		return err
	}

	scope, err := parseScopeFlag(searchScope)
	if err != nil {
		return err
	}

	snippets, err := d.SnippetStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing snippets: %w", err)
	}

	results := d.Search.Rank(snippets, query, domain.SearchOptions{Scope: scope})

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func parseScopeFlag(s string) (domain.SearchScope, error) {
	switch s {
	case "all", "":
		return domain.ScopeAll, nil
	case "title":
		return domain.ScopeTitleOnly, nil
	case "content":
		return domain.ScopeContentOnly, nil
	default:
		return domain.ScopeAll, fmt.Errorf("unknown scope %q (use all, title or content)", s)
	}
}

// searchResult is the JSON output shape for one ranked snippet.
type searchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Score   int    `json:"score"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedSnippet) error {
	out := make([]searchResult, 0, len(results))
	for _, r := range results {
		out = append(out, searchResult{
			Title:   r.Snippet.Title,
			Content: r.Snippet.Content,
			Score:   r.Score,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedSnippet) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s (%d)\n", i+1, r.Snippet.Title, r.Score)
	}

	return nil
}
