package cmd

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"find"},
	Short:   "Fuzzy-search prompt names and descriptions",
	Long: `Rank prompts against the query.

Matches are found in the prompt name and in the description frontmatter
field. No matches is not an error, just an empty result.

Examples:
  pmpts search commit
  pmpts find "code review"`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSearch,
}

var searchLimit int

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum results to show, non-positive for all")
}

func runSearch(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")
	lib := openLibrary()

	prompts, err := lib.List()
	if err != nil {
		fail(err)
	}

	// Rank against "name description" so either part can match.
	descriptions := make([]string, len(prompts))
	targets := make([]string, len(prompts))
	for i, p := range prompts {
		if fm, _, err := prompt.ReadFrontmatter(p.Path); err == nil {
			descriptions[i] = prompt.FormatValue(fm["description"])
		}
		targets[i] = p.Name + " " + descriptions[i]
	}

	matches := fuzzy.Find(query, targets)
	if len(matches) == 0 {
		fmt.Println(ui.NoMatches(query))
		return
	}
	if searchLimit > 0 && len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}

	for _, m := range matches {
		p := prompts[m.Index]
		fmt.Println("  " + highlightName(p.Name, m.MatchedIndexes))
		if descriptions[m.Index] != "" {
			desc := ui.Truncate(descriptions[m.Index], 70)
			fmt.Println(ui.Muted.Render("    " + desc))
		}
	}
}

// highlightName bolds the characters of name the query matched.
// Indexes past the name fall in the description part of the target.
func highlightName(name string, indexes []int) string {
	if !ui.IsTTY {
		return name
	}

	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		if idx < len(name) {
			matched[idx] = true
		}
	}

	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if matched[i] {
			b.WriteString(ui.Highlight.Render(string(name[i])))
		} else {
			b.WriteByte(name[i])
		}
	}
	return b.String()
}
