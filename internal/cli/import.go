package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/loader"
	"github.com/rcliao/journal-archive/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import entries into the SQLite snapshot",
		Long:  "Replace the --db snapshot with the JSON entries array read from file (or stdin). The previous snapshot survives a failed import.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var r io.Reader = os.Stdin
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			exitErr("open input", err)
		}
		defer f.Close()
		r, source = f, args[0]
	}

	entries, err := loader.Decode(r)
	if err != nil {
		exitErr("parse json", err)
	}

	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	batch, err := s.Import(cmd.Context(), store.ImportParams{Source: source, Entries: entries})
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"imported":%d,"batch":%q}`+"\n", batch.Count, batch.ID)
}
