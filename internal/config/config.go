// Package config resolves settings from flags, JOURNAL_* environment
// variables, an optional .journal-archive config file and .env.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeySource   = "source"
	KeyDB       = "db"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
	KeyEnv      = "env"
)

// Config holds resolved settings.
type Config struct {
	Source   string
	DB       string
	Format   string
	LogLevel string
	Env      string
}

// New returns a viper instance with defaults, env binding and config
// search paths applied. Flags may be bound to it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySource, "entries.json")
	v.SetDefault(KeyDB, "~/.journal-archive/archive.db")
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyEnv, "")

	v.SetConfigName(".journal-archive") // .yaml is implicit
	v.SetEnvPrefix("JOURNAL")
	v.AutomaticEnv()

	if override := os.Getenv("JOURNAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return v
}

// Load reads .env and the config file (both optional) and returns the
// resolved settings.
func Load(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	db, err := expand(v.GetString(KeyDB))
	if err != nil {
		return nil, err
	}

	return &Config{
		Source:   v.GetString(KeySource),
		DB:       db,
		Format:   v.GetString(KeyFormat),
		LogLevel: v.GetString(KeyLogLevel),
		Env:      v.GetString(KeyEnv),
	}, nil
}

func expand(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(p), nil
}
