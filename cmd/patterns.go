package cmd

import (
	"fmt"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/ui"
	"github.com/spf13/cobra"
)

// patternsCmd represents the patterns command.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in pattern catalog",
	Long: `List the pattern catalog in priority order. A line is classified by
the first entry that matches it, so earlier entries win over later ones.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	catalog := patterns.Default()
	rows := make([]ui.CatalogRow, 0, len(catalog))
	for _, e := range catalog {
		rows = append(rows, ui.CatalogRow{
			Category:   e.Category,
			Pattern:    e.Matcher.String(),
			Suggestion: e.Suggestion,
		})
	}

	if isJSON() {
		return printJSON(rows)
	}
	fmt.Print(ui.RenderCatalog(rows))
	return nil
}
