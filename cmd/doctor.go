package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/config"
	"github.com/pmpts/pmpts/internal/library"
	"github.com/pmpts/pmpts/internal/ui"
	"github.com/pmpts/pmpts/internal/undo"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the config, prompts directory and undo record",
	Long: `Diagnose the pmpts setup without changing anything.

Reports the config file, the resolved prompts directory, the trash and
whether the recorded undo can still be applied.

Examples:
  pmpts doctor`,
	Args: cobra.NoArgs,
	Run:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println(ui.SectionHeader("Checkup"))
	fmt.Println()

	paths := loadPaths()

	cfg, err := config.Load(paths.ConfigFile)
	switch {
	case err != nil:
		fmt.Printf("  %s config: %v\n", ui.Error.Render("✗"), err)
		cfg = &config.Config{}
	case cfg.Root != "":
		fmt.Printf("  %s config: prompts directory set to %s\n", ui.Success.Render("✓"), cfg.Root)
	default:
		fmt.Printf("  %s config: using the default prompts directory\n", ui.Success.Render("✓"))
	}
	if env := os.Getenv(config.EnvRoot); env != "" {
		fmt.Println(ui.Muted.Render(fmt.Sprintf("    %s=%s overrides it", config.EnvRoot, env)))
	}

	root, err := config.ResolveRoot(cfg)
	if err != nil {
		fail(err)
	}

	fi, statErr := os.Stat(root)
	switch {
	case statErr == nil && fi.IsDir():
		fmt.Printf("  %s prompts directory: %s\n", ui.Success.Render("✓"), root)
		reportContents(root)
	case os.IsNotExist(statErr):
		fmt.Printf("  %s prompts directory: %s does not exist yet (created on first use)\n", ui.Warning.Render("!"), root)
	case statErr != nil:
		fmt.Printf("  %s prompts directory: %v\n", ui.Error.Render("✗"), statErr)
	default:
		fmt.Printf("  %s prompts directory: %s is not a directory\n", ui.Error.Render("✗"), root)
	}

	rec, err := undo.Load(paths.UndoFile)
	switch {
	case err != nil:
		fmt.Printf("  %s undo record: %v\n", ui.Error.Render("✗"), err)
	case rec == nil:
		fmt.Printf("  %s undo record: none\n", ui.Success.Render("✓"))
	default:
		fmt.Printf("  %s undo record: %s from %s\n", ui.Success.Render("✓"), rec.Op, rec.RecordedAt.Format("2006-01-02 15:04:05"))
		problems := undoProblems(rec)
		if len(problems) == 0 {
			fmt.Println(ui.Muted.Render("    pmpts undo would apply cleanly"))
		}
		for _, problem := range problems {
			fmt.Printf("    %s %s\n", ui.Error.Render("✗"), problem)
		}
	}

	fmt.Println()
}

// reportContents counts prompts and trash without creating anything.
// The directory is known to exist here, so Open does not mutate.
func reportContents(root string) {
	lib, err := library.Open(root)
	if err != nil {
		return
	}

	if prompts, err := lib.List(); err == nil {
		fmt.Println(ui.Muted.Render(fmt.Sprintf("    %d prompt(s)", len(prompts))))
	}

	entries, err := lib.TrashEntries()
	if err != nil || len(entries) == 0 {
		return
	}
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	fmt.Println(ui.Muted.Render(fmt.Sprintf("    trash holds %d file(s), %d bytes", len(entries), total)))
}

// undoProblems lists why the recorded undo would fail today.
func undoProblems(rec *undo.Record) []string {
	exists := func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	var problems []string
	switch rec.Op {
	case undo.OpAdd:
		if !exists(rec.Dest) {
			problems = append(problems, fmt.Sprintf("added prompt %s is gone", rec.Dest))
		}
		if exists(rec.Source) {
			problems = append(problems, fmt.Sprintf("original path %s is occupied", rec.Source))
		}
	case undo.OpRemove:
		if !exists(rec.Trashed) {
			problems = append(problems, "the trashed copy is gone")
		}
		if exists(rec.Dest) {
			problems = append(problems, fmt.Sprintf("prompt path %s is occupied", rec.Dest))
		}
	case undo.OpRename:
		if !exists(rec.New) {
			problems = append(problems, fmt.Sprintf("renamed prompt %s is gone", rec.New))
		}
		if exists(rec.Old) {
			problems = append(problems, fmt.Sprintf("old path %s is occupied", rec.Old))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown operation %q", rec.Op))
	}
	if rec.Displaced != "" && !exists(rec.Displaced) {
		problems = append(problems, "the displaced prompt is no longer in the trash")
	}
	return problems
}
