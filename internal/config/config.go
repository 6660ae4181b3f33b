package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string     `yaml:"version" json:"version"`
	Game    GameConfig `yaml:"game" json:"game"`
	Balance Balance    `yaml:"balance" json:"balance"`
}

type GameConfig struct {
	Name            string `yaml:"name" json:"name"`
	StartingCapital int    `yaml:"starting_capital" json:"starting_capital"`
	Difficulty      string `yaml:"difficulty" json:"difficulty"`
	Seed            uint64 `yaml:"seed" json:"seed"`
}

func (c *Config) ApplyDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Game.Difficulty == "" {
		c.Game.Difficulty = "default"
	}
}

// ForDifficulty maps a preset name to its balance table.
func ForDifficulty(mode string) Balance {
	switch mode {
	case "casual":
		return Casual()
	case "hard":
		return Hard()
	default:
		return Default()
	}
}

// Load reads a yaml config file. A missing file is not an error; the
// defaults apply. Balance keys present in the file override the
// difficulty preset they sit on top of.
func Load(path string) (*Config, error) {
	cfg := &Config{Balance: Default()}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	// First pass discovers the difficulty so explicit balance keys in
	// the second pass land on the matching preset.
	var probe Config
	if err := yaml.Unmarshal(b, &probe); err != nil {
		return nil, err
	}
	cfg.Balance = ForDifficulty(probe.Game.Difficulty)

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
