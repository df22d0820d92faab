package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/errors"
	"github.com/pmpts/pmpts/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Move a file into the prompts directory",
	Long: `Move a file into the prompts directory under its derived name.

The stored name keeps the basename and swaps the extension for
.prompt.md, so review.md becomes the prompt "review". Overwriting an
existing prompt needs --force; the displaced file is retained in the
trash.

Examples:
  pmpts add ./review.md
  pmpts add ~/notes/commit.prompt.md --force`,
	Args: cobra.ExactArgs(1),
	Run:  runAdd,
}

var addForce bool

func init() {
	addCmd.Flags().BoolVarP(&addForce, "force", "f", false, "Overwrite an existing prompt")
}

func runAdd(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	rec, info, err := lib.Add(args[0], addForce)
	if errors.IsConflict(err) && !addForce && interactive() {
		fmt.Println(ui.WarningLine(err.Error()))
		if !confirm("Overwrite it? The current file is retained in the trash.") {
			exitWithError("aborted")
		}
		rec, info, err = lib.Add(args[0], true)
	}
	if err != nil {
		fail(err)
	}

	saveUndoRecord(rec)

	fmt.Println(ui.SuccessLine("added " + info.FileName))
	fmt.Printf("  %s %s %s\n", ui.Dim.Render("type"), ui.Code.Render("/"+info.Name), ui.Dim.Render("in chat to use it"))
}
