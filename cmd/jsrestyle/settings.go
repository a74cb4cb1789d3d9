package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsrestyle/internal/config"
)

func configFileName() string { return config.FileName }

// loadSettings merges built-in defaults, the config file and explicit flags,
// in that order of precedence.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}

	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, err = config.Discover(wd)
		if errors.Is(err, config.ErrNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("indent") {
		indent, err := cmd.Flags().GetInt("indent")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Style.Indent = int64(indent)
	}
	if cmd.Flags().Changed("encoding") {
		enc, err := cmd.Flags().GetString("encoding")
		if err != nil {
			return config.Config{}, err
		}
		cfg.Files.Encoding = enc
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
