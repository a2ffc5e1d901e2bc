package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/sweepparse/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweepparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "artifacts", cfg.OutDir)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, []string{"legacy", "regularized"}, cfg.Profiles)
	assert.Equal(t, "booster_sweep_parsed.csv", cfg.Artifacts.CSV)
	assert.Equal(t, "booster_sweep_best.json", cfg.Artifacts.Best)
	assert.Equal(t, "booster_sweep_incomplete.json", cfg.Artifacts.Incomplete)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, "top_n: 3\nout_dir: results\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "results", cfg.OutDir)
	// untouched fields keep their defaults
	assert.Equal(t, []string{"legacy", "regularized"}, cfg.Profiles)
	assert.Equal(t, "booster_sweep_best.json", cfg.Artifacts.Best)
}

func TestLoad_Profiles(t *testing.T) {
	path := writeConfig(t, "profiles: [legacy, experimental]\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "experimental"}, cfg.Profiles)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero top_n", "top_n: 0\n"},
		{"negative top_n", "top_n: -2\n"},
		{"empty profiles", "profiles: []\n"},
		{"empty out_dir", "out_dir: \"\"\n"},
		{"empty csv name", "artifacts:\n  csv: \"\"\n"},
		{"bad yaml", "top_n: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
