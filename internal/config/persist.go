package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"fstats/internal/domain"
)

const (
	configDirName  = "fstats"
	configFileName = "config.yaml"
)

func DefaultConfig() Config {
	return Config{
		Path:           ".",
		Depth:          1,
		SortMode:       domain.SortBySize,
		Theme:          "dark",
		TickRate:       250 * time.Millisecond,
		ProgressPeriod: 3 * time.Second,
		LogFile:        "fstats.log",
		LogLevel:       "info",
	}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// means the per-user config file; a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		defaultPath, err := ConfigPath()
		if err != nil {
			return config, nil
		}
		path = defaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	var stored fileConfig
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return config, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return mergeConfig(config, stored), nil
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.Path != nil {
		merged.Path = *stored.Path
	}
	if stored.Depth != nil {
		merged.Depth = *stored.Depth
	}
	if stored.Names != nil {
		merged.Names = stored.Names
	}
	if stored.Extensions != nil {
		merged.Extensions = stored.Extensions
	}
	if stored.NoIgnores != nil {
		merged.NoIgnores = *stored.NoIgnores
	}
	if stored.ShowHidden != nil {
		merged.ShowHidden = *stored.ShowHidden
	}
	if stored.SortMode != nil {
		merged.SortMode = domainSortMode(*stored.SortMode, base.SortMode)
	}
	if stored.Theme != nil {
		merged.Theme = *stored.Theme
	}
	if stored.Workers != nil {
		merged.Workers = *stored.Workers
	}
	if stored.TickRate != nil && *stored.TickRate > 0 {
		merged.TickRate = *stored.TickRate
	}
	if stored.ProgressPeriod != nil && *stored.ProgressPeriod > 0 {
		merged.ProgressPeriod = *stored.ProgressPeriod
	}
	if stored.LogFile != nil {
		merged.LogFile = *stored.LogFile
	}
	if stored.LogLevel != nil {
		merged.LogLevel = *stored.LogLevel
	}
	return merged
}

func domainSortMode(value string, fallback domain.SortMode) domain.SortMode {
	switch domain.SortMode(value) {
	case domain.SortBySize, domain.SortByCount:
		return domain.SortMode(value)
	default:
		return fallback
	}
}
