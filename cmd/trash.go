package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/ui"
	"github.com/pmpts/pmpts/internal/undo"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Inspect or empty the trash",
	Long: `Work with the retention area inside the prompts directory.

Removed prompts and prompts displaced by forced overwrites land in
.trash and stay there until it is emptied. Plain pmpts trash lists the
retained files.`,
	Args: cobra.NoArgs,
	Run:  runTrashList,
}

var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the retained files",
	Args:  cobra.NoArgs,
	Run:   runTrashList,
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Delete everything in the trash",
	Args:  cobra.NoArgs,
	Run:   runTrashEmpty,
}

var trashYes bool

func init() {
	trashEmptyCmd.Flags().BoolVarP(&trashYes, "yes", "y", false, "Skip the confirmation question")
	trashCmd.AddCommand(trashListCmd)
	trashCmd.AddCommand(trashEmptyCmd)
}

func runTrashList(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	entries, err := lib.TrashEntries()
	if err != nil {
		fail(err)
	}

	if len(entries) == 0 {
		if ui.IsTTY {
			fmt.Println(ui.Muted.Render("  the trash is empty"))
		}
		return
	}

	for _, e := range entries {
		when := "unknown time"
		if !e.DeletedAt.IsZero() {
			when = e.DeletedAt.Format("2006-01-02 15:04:05")
		}
		if ui.IsTTY {
			fmt.Printf("  %s %s\n", e.FileName, ui.Muted.Render(when))
		} else {
			fmt.Printf("%s\t%s\n", e.FileName, when)
		}
	}
}

func runTrashEmpty(cmd *cobra.Command, args []string) {
	lib := openLibrary()

	entries, err := lib.TrashEntries()
	if err != nil {
		fail(err)
	}
	if len(entries) == 0 {
		fmt.Println(ui.Muted.Render("  the trash is already empty"))
		return
	}

	if !trashYes {
		if !interactive() {
			exitWithError("refusing to empty the trash without --yes")
		}
		if !confirm(fmt.Sprintf("Delete %d retained file(s) for good?", len(entries))) {
			exitWithError("aborted")
		}
	}

	n, err := lib.EmptyTrash()
	if err != nil {
		fail(err)
	}

	// An undo record pointing into the emptied trash cannot be applied
	// anymore, so forget it.
	paths := loadPaths()
	if rec, err := undo.Load(paths.UndoFile); err == nil && rec != nil && recordUsesTrash(rec, lib.TrashDir()) {
		if err := undo.Clear(paths.UndoFile); err != nil {
			warn(fmt.Sprintf("could not clear the stale undo record: %v", err))
		}
	}

	fmt.Println(ui.SuccessLine(fmt.Sprintf("deleted %d file(s) from the trash", n)))
}

// recordUsesTrash reports whether rec references a file under trashDir.
func recordUsesTrash(rec *undo.Record, trashDir string) bool {
	prefix := trashDir + string(filepath.Separator)
	return strings.HasPrefix(rec.Trashed, prefix) || strings.HasPrefix(rec.Displaced, prefix)
}
