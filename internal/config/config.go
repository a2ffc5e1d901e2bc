package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	OutDir    string    `yaml:"out_dir"`
	TopN      int       `yaml:"top_n"`
	Profiles  []string  `yaml:"profiles"`
	Artifacts Artifacts `yaml:"artifacts"`
}

type Artifacts struct {
	CSV        string `yaml:"csv"`
	Best       string `yaml:"best"`
	Incomplete string `yaml:"incomplete"`
}

func Default() *Config {
	return &Config{
		OutDir:   "artifacts",
		TopN:     10,
		Profiles: []string{"legacy", "regularized"},
		Artifacts: Artifacts{
			CSV:        "booster_sweep_parsed.csv",
			Best:       "booster_sweep_best.json",
			Incomplete: "booster_sweep_incomplete.json",
		},
	}
}

// Load reads the config at path. A missing file is not an error; the tool
// runs on defaults alone.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.OutDir == "" {
		return fmt.Errorf("out_dir must not be empty")
	}
	if cfg.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1")
	}
	if len(cfg.Profiles) == 0 {
		return fmt.Errorf("no candidate profiles defined")
	}
	if cfg.Artifacts.CSV == "" {
		return fmt.Errorf("artifacts.csv must not be empty")
	}
	if cfg.Artifacts.Best == "" {
		return fmt.Errorf("artifacts.best must not be empty")
	}
	if cfg.Artifacts.Incomplete == "" {
		return fmt.Errorf("artifacts.incomplete must not be empty")
	}
	return nil
}
