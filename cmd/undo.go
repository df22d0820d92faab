package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/errors"
	"github.com/pmpts/pmpts/internal/ui"
	"github.com/pmpts/pmpts/internal/undo"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Take back the most recent add, remove or rename",
	Long: `Reverse the most recently recorded operation.

Only the single last mutation is recorded. Attempting the undo spends
the record whether the reversal works or not, so a second undo always
reports nothing to undo. Running with nothing to undo exits non-zero.

Examples:
  pmpts undo`,
	Args: cobra.NoArgs,
	Run:  runUndo,
}

func runUndo(cmd *cobra.Command, args []string) {
	paths := loadPaths()

	rec, err := undo.Load(paths.UndoFile)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to read undo record: %v", err))
	}
	if rec == nil {
		fail(errors.UndoUnavailable("nothing to undo"))
	}

	// The record is spent once an undo is attempted, even a failed one.
	if err := undo.Clear(paths.UndoFile); err != nil {
		exitWithError(fmt.Sprintf("failed to clear undo record: %v", err))
	}

	lib := openLibrary()

	desc, err := lib.Undo(rec)
	if err != nil {
		fail(err)
	}

	fmt.Println(ui.SuccessLine(desc))
}
