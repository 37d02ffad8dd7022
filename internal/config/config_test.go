package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outlook-mapi/mapi-go/pkg/loader"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapi-probe.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileOverlaysDefinedKeys(t *testing.T) {
	path := writeConfig(t, `
library_path = '  C:\Office\olmapi32.dll '
prefer_outlook = false
log_level = "DEBUG"
json = true
`)

	cfg, err := LoadFile(path, Default())
	require.NoError(t, err)

	assert.Equal(t, `C:\Office\olmapi32.dll`, cfg.Loader.LibraryPath)
	assert.False(t, cfg.Loader.PreferOutlook)
	assert.Equal(t, loader.CurrentExportsVersion, cfg.Loader.ExportsVersion, "undefined key keeps default")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSON)
}

func TestLoadFileEmptyKeepsBase(t *testing.T) {
	base := Default()
	base.Loader.TraceFile = "base.mtrace"

	cfg, err := LoadFile(writeConfig(t, "# nothing\n"), base)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "library_path = \n"},
		{"unknown key", "libary_path = 'x'\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body), Default())
			require.Error(t, err)
		})
	}
}

func TestLoadFileLeavesValidationToCaller(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "exports_version = '7'\n"), Default())
	require.NoError(t, err)
	assert.Equal(t, "7", cfg.Loader.ExportsVersion)
	assert.ErrorIs(t, cfg.Loader.Validate(), loader.ErrInvalidConfig)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
