package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicdawn/finder-sort/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLocale, EnvFolderFirst, EnvNull} {
		t.Setenv(key, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("reads dotenv file", func(t *testing.T) {
		clearEnv(t)
		path := writeEnvFile(t, "FINDERSORT_LOCALE=zh-CN\nFINDERSORT_FOLDER_FIRST=true\nFINDERSORT_NULL=1\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Config{Locale: "zh-CN", FolderFirst: true, Null: true}, cfg)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLocale, "en-US")
		path := writeEnvFile(t, "FINDERSORT_LOCALE=zh-CN\nFINDERSORT_FOLDER_FIRST=true\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "en-US", cfg.Locale)
		assert.True(t, cfg.FolderFirst)
	})

	t.Run("bad boolean", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvFolderFirst, "sometimes")

		_, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvFolderFirst)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Locale: "zh-CN"}.Validate())
	assert.ErrorIs(t, Config{Locale: "not a locale!"}.Validate(), domain.ErrInvalidLocale)
}
