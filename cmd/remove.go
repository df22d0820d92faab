package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/ui"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Move a prompt to the trash",
	Long: `Move the named prompt out of the prompts directory into its trash.

The file itself is kept; take the removal back with pmpts undo, or
purge it for good with pmpts trash empty.

Examples:
  pmpts remove review
  pmpts rm review --yes`,
	Args: cobra.ExactArgs(1),
	Run:  runRemove,
}

var removeYes bool

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation question")
}

func runRemove(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	info, err := lib.Resolve(args[0])
	if err != nil {
		fail(err)
	}

	if !removeYes {
		if !interactive() {
			exitWithError(fmt.Sprintf("refusing to remove '%s' without --yes", info.Name))
		}
		if !confirm(fmt.Sprintf("Remove prompt '%s'?", info.Name)) {
			exitWithError("aborted")
		}
	}

	rec, err := lib.Remove(info.Name)
	if err != nil {
		fail(err)
	}

	saveUndoRecord(rec)

	fmt.Println(ui.SuccessLine(fmt.Sprintf("removed '%s'", info.Name)))
	fmt.Println(ui.Dim.Render("  take it back with pmpts undo"))
}
