package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/mcpserver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server (stdio)",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
list_entries and entry_stats tools. Entries are loaded once at startup.
Logs go to stderr.`,
		Run: runMCP,
	}

	RootCmd.AddCommand(cmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	srv := mcpserver.New(loadEntries(cmd, cfg, log), Version, log)
	if err := srv.Start(); err != nil {
		exitErr("mcp", err)
	}
}
