package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmpts/pmpts/internal/config"
	"github.com/pmpts/pmpts/internal/ui"
)

var setrootCmd = &cobra.Command{
	Use:   "setroot <path>",
	Short: "Set the prompts directory",
	Long: `Persist the prompts directory in the config file.

The directory is created on first use, not by this command. The
PMPTS_ROOT environment variable overrides the configured value while
it is set.

Examples:
  pmpts setroot ~/prompts
  pmpts setroot "$HOME/Library/Application Support/Code/User/prompts"`,
	Args: cobra.ExactArgs(1),
	Run:  runSetroot,
}

func runSetroot(cmd *cobra.Command, args []string) {
	root, err := config.ExpandPath(args[0])
	if err != nil {
		fail(err)
	}

	paths := loadPaths()
	cfg := loadConfig(paths)

	cfg.Root = root
	if err := config.Save(paths.ConfigFile, cfg); err != nil {
		exitWithError(fmt.Sprintf("failed to save config: %v", err))
	}

	fmt.Println(ui.SuccessLine("prompts directory set to " + root))
	if env := os.Getenv(config.EnvRoot); env != "" {
		warn(fmt.Sprintf("%s=%s is set and overrides this setting", config.EnvRoot, env))
	}
}
