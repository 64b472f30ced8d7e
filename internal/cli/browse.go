package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/loader"
	"github.com/rcliao/journal-archive/internal/page"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive journal page",
		Long: `Open the journal page: type to search, tab to show archived entries,
esc to clear the search, arrow keys to scroll, ctrl+c to quit.`,
		Run: runBrowse,
	}

	RootCmd.AddCommand(cmd)
}

func runBrowse(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	if err := page.Run(loader.Open(cfg.Source), log); err != nil {
		exitErr("browse", err)
	}
}
