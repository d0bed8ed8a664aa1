package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errBadConfig = errors.New("sprout: bad config file")

// fileConfig mirrors the learn flags. Zero values mean "not set".
type fileConfig struct {
	Condition string        `yaml:"condition"`
	Backend   string        `yaml:"backend"`
	Timeout   time.Duration `yaml:"timeout"`
	Verify    bool          `yaml:"verify"`
	Workers   int           `yaml:"workers"`
}

// loadConfig reads path; an empty path yields the zero config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", errBadConfig, path, err)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("%w: %s: negative workers", errBadConfig, path)
	}

	return cfg, nil
}

// applyConfig copies config values onto flags the user did not set.
func applyConfig(cmd *cobra.Command, cfg fileConfig) error {
	set := func(name, value string) error {
		if value == "" || cmd.Flags().Changed(name) {
			return nil
		}
		return cmd.Flags().Set(name, value)
	}
	if err := set("condition", cfg.Condition); err != nil {
		return err
	}
	if err := set("backend", cfg.Backend); err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		if err := set("timeout", cfg.Timeout.String()); err != nil {
			return err
		}
	}
	if cfg.Verify {
		if err := set("verify", "true"); err != nil {
			return err
		}
	}
	if cfg.Workers > 0 {
		if err := set("workers", fmt.Sprint(cfg.Workers)); err != nil {
			return err
		}
	}

	return nil
}
