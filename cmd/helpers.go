package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"github.com/pmpts/pmpts/internal/config"
	"github.com/pmpts/pmpts/internal/library"
	"github.com/pmpts/pmpts/internal/ui"
	"github.com/pmpts/pmpts/internal/undo"
)

// loadPaths locates the config files or exits.
func loadPaths() *config.Paths {
	paths, err := config.GetPaths()
	if err != nil {
		fail(err)
	}
	return paths
}

// loadConfig reads the config file or exits.
func loadConfig(paths *config.Paths) *config.Config {
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		exitWithError(fmt.Sprintf("failed to read config: %v", err))
	}
	return cfg
}

// openLibrary resolves the prompts directory and opens it, or exits.
func openLibrary() *library.Library {
	paths := loadPaths()
	cfg := loadConfig(paths)

	root, err := config.ResolveRoot(cfg)
	if err != nil {
		fail(err)
	}

	lib, err := library.Open(root)
	if err != nil {
		fail(err)
	}
	return lib
}

// saveUndoRecord persists rec after a mutation already succeeded, so a
// failure here only costs the undo, not the operation.
func saveUndoRecord(rec *undo.Record) {
	paths := loadPaths()
	if err := undo.Save(paths.UndoFile, rec); err != nil {
		warn(fmt.Sprintf("could not record undo information: %v", err))
	}
}

// warn prints a warning to stderr without exiting.
func warn(msg string) {
	fmt.Fprintln(os.Stderr, ui.Warning.Render("Warning: "+msg))
}

var stdinIsTTY = term.IsTerminal(os.Stdin.Fd())

// interactive reports whether pmpts can ask questions: both ends of the
// conversation must be a terminal.
func interactive() bool {
	return stdinIsTTY && ui.IsTTY
}

// confirm asks a yes/no question on the terminal. Only y or yes accept.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
