package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry by id",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}

	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse id", err)
	}

	cfg := loadConfig()
	log := newLogger(cfg)
	defer log.Sync()

	for _, e := range loadEntries(cmd, cfg, log) {
		if e.ID == id {
			if err := render.Print(os.Stdout, cfg.Format, []model.Entry{e}, printWidth); err != nil {
				exitErr("print", err)
			}
			return
		}
	}
	exitErr("show", fmt.Errorf("entry %d not found", id))
}
