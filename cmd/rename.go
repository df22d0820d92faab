package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/errors"
	"github.com/pmpts/pmpts/internal/prompt"
	"github.com/pmpts/pmpts/internal/ui"
)

var renameCmd = &cobra.Command{
	Use:     "rename <old> <new>",
	Aliases: []string{"mv"},
	Short:   "Rename a prompt",
	Long: `Rename a prompt inside the prompts directory.

Both names may be given with or without the .prompt.md suffix. Renaming
onto an existing prompt needs --force; the displaced file is retained
in the trash.

Examples:
  pmpts rename review code-review
  pmpts mv draft.prompt.md final --force`,
	Args: cobra.ExactArgs(2),
	Run:  runRename,
}

var renameForce bool

func init() {
	renameCmd.Flags().BoolVarP(&renameForce, "force", "f", false, "Overwrite an existing prompt")
}

func runRename(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	rec, err := lib.Rename(args[0], args[1], renameForce)
	if errors.IsConflict(err) && !renameForce && interactive() {
		fmt.Println(ui.WarningLine(err.Error()))
		if !confirm("Overwrite it? The current file is retained in the trash.") {
			exitWithError("aborted")
		}
		rec, err = lib.Rename(args[0], args[1], true)
	}
	if err != nil {
		fail(err)
	}

	saveUndoRecord(rec)

	oldName := prompt.DisplayName(prompt.CanonicalFileName(args[0]))
	newName := prompt.DisplayName(prompt.CanonicalFileName(args[1]))
	fmt.Println(ui.SuccessLine(fmt.Sprintf("renamed '%s' to '%s'", oldName, newName)))
}
