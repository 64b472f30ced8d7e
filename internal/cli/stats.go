package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Long:  "Count entries by archived state and mood category. With --snapshot the SQLite snapshot at --db is summarized instead of the source.",
		Run:   runStats,
	}

	cmd.Flags().Bool("snapshot", false, "Summarize the --db snapshot")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	snapshot, _ := cmd.Flags().GetBool("snapshot")

	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	var stats *store.Stats
	if snapshot {
		s, err := openStore(cfg)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		stats, err = s.Stats(cmd.Context())
		if err != nil {
			exitErr("stats", err)
		}
		stats.FileStats(cfg.DB)
	} else {
		stats = store.Summarize(loadEntries(cmd, cfg, log))
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
