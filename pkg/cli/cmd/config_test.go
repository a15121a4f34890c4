package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datavault-io/watchlist/internal/config"
)

func withConfigFile(t *testing.T) string {
	t.Helper()
	orig := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	t.Cleanup(func() { cfgFile = orig })
	return cfgFile
}

func TestSaveAndLoadFileConfig(t *testing.T) {
	path := withConfigFile(t)

	saved := &config.Config{
		API: config.API{
			URL:      "https://example.com/v1/configurations/watchlists",
			Username: "user",
			Password: "secret-password",
			Timeout:  45 * time.Second,
		},
		Log: config.Log{Level: "debug"},
	}

	got, err := saveFileConfig(saved)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, loadedPath, err := loadFileConfig()
	require.NoError(t, err)
	assert.Equal(t, path, loadedPath)
	assert.Equal(t, saved, loaded)
}

func TestLoadFileConfigMissing(t *testing.T) {
	withConfigFile(t)

	_, _, err := loadFileConfig()
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abcd"))
	assert.Equal(t, "se***********rd", maskSecret("secret-password"))
}
