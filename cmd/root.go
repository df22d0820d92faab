package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "pmpts",
	Short: "Keep your prompt files in one place",
	Long: `pmpts manages the reusable .prompt.md files that VS Code picks up
as slash commands in chat.

Prompts live in a single prompts directory (the VS Code user prompts
folder unless configured otherwise). Bring files in with add, reshape
the collection with rename and remove, and take the last change back
with undo.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(setrootCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pmpts %s\n", Version)
	},
}

// exitWithError prints an error and exits
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Error.Render("Error: "+msg))
	os.Exit(1)
}

// fail exits with the error's message
func fail(err error) {
	exitWithError(err.Error())
}
