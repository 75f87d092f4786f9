package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/magicdawn/finder-sort/internal/adapter/collation"
)

// Environment variables read by LoadConfig.
const (
	EnvLocale      = "FINDERSORT_LOCALE"
	EnvFolderFirst = "FINDERSORT_FOLDER_FIRST"
	EnvNull        = "FINDERSORT_NULL"
)

// Config holds the settings for one sort run.
type Config struct {
	Locale      string
	FolderFirst bool
	Null        bool // NUL-delimited input and output
}

// LoadConfig reads settings from the environment, falling back to the
// dotenv file at envFile. A missing file is not an error.
func LoadConfig(envFile string) (Config, error) {
	fileEnv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	cfg := Config{Locale: lookup(EnvLocale)}
	if cfg.FolderFirst, err = parseBool(EnvFolderFirst, lookup(EnvFolderFirst)); err != nil {
		return Config{}, err
	}
	if cfg.Null, err = parseBool(EnvNull, lookup(EnvNull)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects malformed locale tags.
func (c Config) Validate() error {
	_, err := collation.ParseLocale(c.Locale)
	return err
}

func parseBool(key, value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
