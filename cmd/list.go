package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the prompts in the prompts directory",
	Long: `List the prompts in the prompts directory, one per line.

Examples:
  pmpts list            # names only
  pmpts list --files    # names with stored filenames
  pmpts list --verbose  # frontmatter table`,
	Args: cobra.NoArgs,
	Run:  runList,
}

var (
	listVerbose bool
	listFiles   bool
)

func init() {
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Show frontmatter fields in a table")
	listCmd.Flags().BoolVarP(&listFiles, "files", "f", false, "Show stored filenames")
}

func runList(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	prompts, err := lib.List()
	if err != nil {
		fail(err)
	}

	if len(prompts) == 0 {
		if ui.IsTTY {
			fmt.Println(ui.NoPrompts(lib.Root()))
		}
		return
	}

	if listVerbose {
		listTable(prompts)
		return
	}

	for _, p := range prompts {
		if listFiles {
			fmt.Printf("%s\t%s\n", p.Name, p.FileName)
		} else {
			fmt.Println(p.Name)
		}
	}
}

// maxCellWidth caps a cell in the verbose table.
const maxCellWidth = 40

// listTable prints one row per prompt with a column per frontmatter
// field seen across the collection.
func listTable(prompts []prompt.Info) {
	fms := make([]map[string]interface{}, len(prompts))
	hasDescription := false
	extra := map[string]bool{}

	for i, p := range prompts {
		fm, _, err := prompt.ReadFrontmatter(p.Path)
		if err != nil {
			warn(fmt.Sprintf("skipping frontmatter of '%s': %v", p.Name, err))
			fm = map[string]interface{}{}
		}
		fms[i] = fm
		for key := range fm {
			if key == "description" {
				hasDescription = true
			} else {
				extra[key] = true
			}
		}
	}

	// description sits next to the name, the rest is alphabetical
	headers := []string{"name"}
	if hasDescription {
		headers = append(headers, "description")
	}
	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	headers = append(headers, keys...)

	rows := make([][]string, len(prompts))
	for i, p := range prompts {
		row := []string{p.Name}
		if hasDescription {
			row = append(row, prompt.FormatValue(fms[i]["description"]))
		}
		for _, key := range keys {
			row = append(row, prompt.FormatValue(fms[i][key]))
		}
		rows[i] = row
	}

	lines, headerLines := ui.Table(headers, rows, maxCellWidth)
	for i, line := range lines {
		if i < headerLines {
			fmt.Println(ui.Subtitle.Render(line))
		} else {
			fmt.Println(line)
		}
	}
}
