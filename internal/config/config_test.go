package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/tres-enum-migrator/internal/enummap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migrator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "migrator.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, enummap.Defaults(), cfg.Mappings)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "migrator.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
units_dir: ./data/units
extension: .res
encoding: windows-1252
log_level: debug
mappings:
  - name: rank
    entries:
      - key: 'rank = "Gold"'
        value: 'rank = 3'
      - key: 'rank = "Oro"'
        value: 'rank = 3'
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "./data/units", cfg.UnitsDir)
	assert.Equal(t, ".res", cfg.Extension)
	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Mappings, 1)
	assert.Equal(t, "rank", cfg.Mappings[0].Name)
	assert.Equal(t, []enummap.Entry{
		{Key: `rank = "Gold"`, Value: "rank = 3"},
		{Key: `rank = "Oro"`, Value: "rank = 3"},
	}, cfg.Mappings[0].Entries)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "units_dir: ./elsewhere\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "./elsewhere", cfg.UnitsDir)
	assert.Equal(t, ".tres", cfg.Extension)
	assert.Len(t, cfg.Mappings, 2)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MIGRATOR_UNITS_DIR", "/srv/units")
	t.Setenv("MIGRATOR_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "units_dir: ./from-file\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "/srv/units", cfg.UnitsDir)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "units_dir: [\n", "failed to parse config file"},
		{"empty extension", "extension: ''\n", "extension is required"},
		{"bad encoding", "encoding: klingon-8\n", "unsupported encoding"},
		{"bad log level", "log_level: loud\n", "unknown log level"},
		{"duplicate keys", `
mappings:
  - name: faction
    entries:
      - { key: 'faction = "A"', value: 'faction = 0' }
      - { key: 'faction = "A"', value: 'faction = 1' }
`, "duplicate mapping key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, string(data)), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
