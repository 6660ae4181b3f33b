package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg.Balance)
	assert.Equal(t, "default", cfg.Game.Difficulty)
	assert.Equal(t, "1", cfg.Version)
}

func TestLoadOverridesPreset(t *testing.T) {
	raw := `version: "1"
game:
  name: Riverbend Zoo
  starting_capital: 5000
  difficulty: hard
  seed: 42
balance:
  day_limit: 45
`
	path := filepath.Join(t.TempDir(), "menagerie.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Riverbend Zoo", cfg.Game.Name)
	assert.Equal(t, 5000, cfg.Game.StartingCapital)
	assert.Equal(t, uint64(42), cfg.Game.Seed)

	// Explicit keys sit on top of the hard preset.
	assert.Equal(t, 45, cfg.Balance.DayLimit)
	assert.Equal(t, Hard().SeedChancePct, cfg.Balance.SeedChancePct)
	assert.Equal(t, Hard().MarketRefreshFee, cfg.Balance.MarketRefreshFee)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menagerie.yaml")
	require.NoError(t, os.WriteFile(path, []byte("balance: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MENAGERIE_DAY_LIMIT", "60")
	t.Setenv("MENAGERIE_EVENT_CHANCE_PCT", "35")

	cfg := FromEnv()
	assert.Equal(t, 60, cfg.DayLimit)
	assert.Equal(t, 35, cfg.EventChancePct)
	assert.Equal(t, Default().CureCost, cfg.CureCost)
}

func TestFromEnvDifficultyPreset(t *testing.T) {
	t.Setenv("DIFFICULTY", "casual")
	assert.Equal(t, Casual(), FromEnv())
}

func TestPresets(t *testing.T) {
	def, casual, hard := Default(), Casual(), Hard()

	assert.Greater(t, casual.StartingCapital, def.StartingCapital)
	assert.Less(t, hard.StartingCapital, def.StartingCapital)
	assert.Greater(t, hard.SeedChancePct, def.SeedChancePct)
	assert.Less(t, casual.PlagueDeathPct, def.PlagueDeathPct)
	assert.Equal(t, def.DayLimit, casual.DayLimit)
	assert.Equal(t, def.DayLimit, hard.DayLimit)
}
