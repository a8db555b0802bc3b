package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionText(t *testing.T) {
	v := Version{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"}
	assert.Equal(t, "v1.2.3 : abc123 (2024-01-01)", v.VersionText())
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig(WithVersion(Version{Version: "0.1.0", Commit: "deadbeef", Date: "today"}))
	assert.Equal(t, "PrefSync", cfg.Name)
	assert.Equal(t, "prefkit", cfg.Repository.Owner)
	assert.Equal(t, "0.1.0", cfg.Version.Version)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file creates defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Import.IncludeBools)
		assert.Equal(t, "info", cfg.Logging.Level)

		_, err = os.Stat(path)
		assert.NoError(t, err, "default config file should have been written")
	})

	t.Run("empty file is replaced with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Import.IncludeBools)
	})

	t.Run("existing file round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		want := Config{
			Import:  ImportConfig{IncludeBools: false, DryRun: true},
			Sink:    SinkConfig{DatabasePath: "/tmp/prefs.db"},
			Logging: LoggingConfig{Level: "debug"},
		}
		require.NoError(t, SaveConfig(path, want))

		got, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unparseable file returns error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}
