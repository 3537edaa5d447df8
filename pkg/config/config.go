package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Repo      string `yaml:"repo"`
	Changelog string `yaml:"changelog"`
	Branch    string `yaml:"branch"`
	Output    string `yaml:"output"`
	Overwrite bool   `yaml:"-"`
	DryRun    bool   `yaml:"-"`
	Token     string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Output: "text",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("repo"); err == nil && v != "" {
		cfg.Repo = v
	}
	if v, err := flags.GetString("changelog"); err == nil && v != "" {
		cfg.Changelog = v
	}
	if v, err := flags.GetString("branch"); err == nil && v != "" {
		cfg.Branch = v
	}
	if v, err := flags.GetString("output"); err == nil && v != "" {
		cfg.Output = v
	}
	if v, err := flags.GetString("github-token"); err == nil && v != "" {
		cfg.Token = v
	}
	if v, err := flags.GetBool("overwrite"); err == nil {
		cfg.Overwrite = v
	}
	if v, err := flags.GetBool("dry-run"); err == nil {
		cfg.DryRun = v
	}
	return cfg
}
