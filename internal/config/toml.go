// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Analyze  AnalyzeConfig  `toml:"analyze"`
	Generate GenerateConfig `toml:"generate"`
	Bench    BenchConfig    `toml:"bench"`
}

// AnalyzeConfig maps analysis settings.
type AnalyzeConfig struct {
	Top     *int `toml:"top"`
	Workers *int `toml:"workers"`
}

// GenerateConfig maps synthetic text settings.
type GenerateConfig struct {
	Words    *int     `toml:"words"`
	CapsPct  *float64 `toml:"caps"`
	PunctPct *float64 `toml:"punct"`
	PunctSet *string  `toml:"punct-set"`
	Vocab    *string  `toml:"vocab"`
	Lang     *string  `toml:"lang"`
}

// BenchConfig maps benchmark settings.
type BenchConfig struct {
	Words  *int  `toml:"words"`
	Repeat *int  `toml:"repeat"`
	Record *bool `toml:"record"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
