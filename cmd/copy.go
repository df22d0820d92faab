package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/ui"
)

var copyCmd = &cobra.Command{
	Use:     "copy <name> <dest>",
	Aliases: []string{"cp"},
	Short:   "Copy a prompt to a path outside the prompts directory",
	Long: `Copy a prompt's file to an external path.

The prompt itself stays put, so copies never touch the undo record.
When dest is a directory the stored filename is kept.

Examples:
  pmpts copy review ./review.prompt.md
  pmpts cp review ~/backups/`,
	Args: cobra.ExactArgs(2),
	Run:  runCopy,
}

func runCopy(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	info, err := lib.Resolve(args[0])
	if err != nil {
		fail(err)
	}

	dest, err := lib.CopyTo(info.Name, args[1])
	if err != nil {
		fail(err)
	}

	fmt.Println(ui.SuccessLine(fmt.Sprintf("copied '%s' to %s", info.Name, dest)))
}
