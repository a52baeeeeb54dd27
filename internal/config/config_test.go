package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"airhhi/internal/config"
	"airhhi/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err, "missing config file should fall back to defaults")

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, []string{"DUS", "FRA", "HAM", "MUC", "STR", "SXF", "TXL"}, cfg.Analysis.FocusAirports)
	require.Equal(t, []string{"S15", "S16", "S17", "S18", "S19"}, cfg.Analysis.Seasons)
	require.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, cfg.Analysis.SummerMonths)
	require.Equal(t, "Lufthansa Group", cfg.Analysis.TrackedGroup)
	require.Equal(t, "Air Berlin Group", cfg.Analysis.BaselineGroup)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yml := `
environment: production
data:
  scheduleFile: /tmp/schedule.csv
  outputDir: /tmp/out
analysis:
  focusAirports: [FRA, MUC]
  focusRegions: [WESTERN EUROPE]
  seasons: [S18, S19]
  years: [2018, 2019]
  trackedGroup: Lufthansa Group
  baselineGroup: Air Berlin Group
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "/tmp/schedule.csv", cfg.Data.ScheduleFile)
	require.Equal(t, []string{"FRA", "MUC"}, cfg.Analysis.FocusAirports)
}

func TestValidate(t *testing.T) {
	var cfg config.Config
	cfg.Analysis.FocusAirports = nil

	err := cfg.Validate()
	require.ErrorIs(t, err, serrors.ErrConfig, "empty static tables are a fatal configuration error")
}

func TestSeasonName(t *testing.T) {
	var cfg config.Config
	cfg.Analysis.SeasonNames = map[string]string{"S17": "Summer 2017"}

	require.Equal(t, "Summer 2017", cfg.SeasonName("S17"))
	require.Equal(t, "S99", cfg.SeasonName("S99"), "unknown seasons fall back to the identifier")
}
