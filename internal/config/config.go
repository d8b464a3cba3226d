package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address      string `yaml:"address"`
	DatabasePath string `yaml:"database_path"`
	Grades       string `yaml:"grades"`
	DefaultYear  string `yaml:"default_year"`
	Watch        bool   `yaml:"watch"`
}

func Default() Config {
	return Config{
		Address:      ":http",
		DatabasePath: "zotcurve.db",
		Grades:       "grades.tsv",
		DefaultYear:  "2018to19",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
