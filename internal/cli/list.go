package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/filter"
	"github.com/rcliao/journal-archive/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries matching a keyword",
		Long:  "List entries whose title, body or mood contains the query (case-insensitive). Archived entries are hidden unless -a is given.",
		Run:   runList,
	}

	cmd.Flags().StringP("query", "q", "", "Keyword to match")
	cmd.Flags().BoolP("archived", "a", false, "Include archived entries")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	archived, _ := cmd.Flags().GetBool("archived")

	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	entries := loadEntries(cmd, cfg, log)
	visible := filter.Apply(entries, filter.Params{Query: query, ShowArchived: archived})

	if err := render.Print(os.Stdout, cfg.Format, visible, printWidth); err != nil {
		exitErr("print", err)
	}
}
