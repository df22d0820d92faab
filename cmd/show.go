package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/ui"
)

var showCmd = &cobra.Command{
	Use:     "show <name>",
	Aliases: []string{"view", "cat"},
	Short:   "Show a prompt's metadata and body",
	Long: `Print a prompt: its frontmatter fields, then the body.

On a terminal the body is rendered as markdown; when piped, the raw
body is printed so the output stays scriptable.

Examples:
  pmpts show review
  pmpts show review | pbcopy`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	info, err := lib.Resolve(args[0])
	if err != nil {
		fail(err)
	}

	meta, body, err := prompt.ReadMetadata(info.Path)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to read '%s': %v", info.Name, err))
	}

	if !ui.IsTTY {
		fmt.Print(body)
		if body != "" && !strings.HasSuffix(body, "\n") {
			fmt.Println()
		}
		return
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  " + info.Name))
	if meta.Description != "" {
		fmt.Println(ui.Muted.Render("  " + meta.Description))
	}
	fmt.Println()

	if badge := ui.ModeBadge(meta.Mode); badge != "" {
		fmt.Printf("  %s\n", badge)
	}
	if meta.Model != "" {
		fmt.Printf("  Model: %s\n", ui.Muted.Render(meta.Model))
	}
	if len(meta.Tools) > 0 {
		fmt.Printf("  Tools: %s\n", ui.Muted.Render(strings.Join(meta.Tools, ", ")))
	}
	fmt.Println(ui.Divider(40))

	fmt.Print(renderMarkdown(body))
	fmt.Println(ui.Dim.Render("  " + info.Path))
}

// renderMarkdown renders body for the terminal, falling back to the
// raw text when the renderer cannot be built.
func renderMarkdown(body string) string {
	width := ui.TerminalWidth()
	if width > 80 {
		width = 80
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts = append(opts, glamour.WithStandardStyle(style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return body
	}
	out, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return out
}
