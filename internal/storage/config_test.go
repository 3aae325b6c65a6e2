package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("no .pzconfig.yaml returns defaults", func(t *testing.T) {
		s, err := Open(t.TempDir())
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, DefaultPrizeFile, cfg.PrizeFile)
		assert.Equal(t, DefaultDrawCount, cfg.DrawCount)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("full .pzconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		configContent := `prize_file: lottery.txt
draw_count: 3
log_level: debug
color: never
`
		err := os.WriteFile(filepath.Join(dir, ".pzconfig.yaml"), []byte(configContent), 0644)
		require.NoError(t, err)

		s, err := Open(dir)
		require.NoError(t, err)
		cfg := s.Config()

		assert.Equal(t, "lottery.txt", cfg.PrizeFile)
		assert.Equal(t, 3, cfg.DrawCount)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, ColorNever, cfg.Color)
	})

	t.Run("partial .pzconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, ".pzconfig.yaml"), []byte("draw_count: 2\n"), 0644)
		require.NoError(t, err)

		s, err := Open(dir)
		require.NoError(t, err)
		cfg := s.Config()

		assert.Equal(t, 2, cfg.DrawCount)
		assert.Equal(t, DefaultPrizeFile, cfg.PrizeFile)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("empty prize_file falls back to default", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, ".pzconfig.yaml"), []byte("prize_file: \"\"\n"), 0644)
		require.NoError(t, err)

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultPrizeFile, s.Config().PrizeFile)
	})

	t.Run("invalid YAML returns error", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, ".pzconfig.yaml"), []byte("draw_count: [unclosed\n"), 0644)
		require.NoError(t, err)

		_, err = Open(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse .pzconfig.yaml")
	})

	t.Run("unknown values are rejected", func(t *testing.T) {
		for _, content := range []string{"log_level: loud\n", "color: sometimes\n"} {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".pzconfig.yaml"), []byte(content), 0644))

			_, err := Open(dir)
			require.Error(t, err, content)
			assert.Contains(t, err.Error(), "invalid .pzconfig.yaml")
		}
	})
}
