// Package cli implements the journal-archive CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/journal-archive/internal/config"
	"github.com/rcliao/journal-archive/internal/loader"
	"github.com/rcliao/journal-archive/internal/logger"
	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/store"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// printWidth is the wrap width for text output.
const printWidth = 80

var v = config.New()

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "journal-archive",
	Short: "Browse and search a journal archive",
	Long: `A terminal journal archive. Entries are read once from a JSON file, a URL
or a SQLite snapshot, then searched by keyword with archived entries hidden
unless asked for.`,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringP("source", "s", "", "Entries location: JSON file, http(s) URL, sqlite://path or *.db (default: $JOURNAL_SOURCE or entries.json)")
	pf.String("db", "", "SQLite snapshot path for import/export (default: $JOURNAL_DB or ~/.journal-archive/archive.db)")
	pf.StringP("format", "f", "", "Output format: json, text or table (default: $JOURNAL_FORMAT or text)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (default: $JOURNAL_LOG_LEVEL or warn)")

	_ = v.BindPFlag(config.KeySource, pf.Lookup("source"))
	_ = v.BindPFlag(config.KeyDB, pf.Lookup("db"))
	_ = v.BindPFlag(config.KeyFormat, pf.Lookup("format"))
	_ = v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
}

func loadConfig() *config.Config {
	cfg, err := config.Load(v)
	if err != nil {
		exitErr("load config", err)
	}
	return cfg
}

func newLogger(cfg *config.Config) *zap.Logger {
	log, err := logger.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		exitErr("create logger", err)
	}
	return log
}

// loadEntries reads the configured source once. A failed load is logged
// and yields an empty collection.
func loadEntries(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) []model.Entry {
	src := loader.Open(cfg.Source)
	entries, err := src.Load(cmd.Context())
	if err != nil {
		log.Error("error loading entries", zap.String("source", src.String()), zap.Error(err))
		return []model.Entry{}
	}
	log.Debug("entries loaded", zap.String("source", src.String()), zap.Int("count", len(entries)))
	return entries
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DB)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
