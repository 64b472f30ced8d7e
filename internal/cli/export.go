package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the SQLite snapshot as JSON",
		Long:  "Write the --db snapshot as a JSON entries array, in original order. The output can be fed back to import.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entries, err := s.Entries(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	if err := render.PrintJSON(os.Stdout, entries); err != nil {
		exitErr("print", err)
	}
}
