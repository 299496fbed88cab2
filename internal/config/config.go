package config

import (
	"time"

	"fstats/internal/domain"
)

type Config struct {
	Path           string          `yaml:"path"`
	Depth          int             `yaml:"depth"`
	Names          []string        `yaml:"names"`
	Extensions     []string        `yaml:"extensions"`
	NoIgnores      bool            `yaml:"noIgnores"`
	ShowHidden     bool            `yaml:"showHidden"`
	SortMode       domain.SortMode `yaml:"sortMode"`
	Theme          string          `yaml:"theme"`
	Workers        int             `yaml:"workers"`
	TickRate       time.Duration   `yaml:"tickRate"`
	ProgressPeriod time.Duration   `yaml:"progressPeriod"`
	LogFile        string          `yaml:"logFile"`
	LogLevel       string          `yaml:"logLevel"`
}

type fileConfig struct {
	Path           *string        `yaml:"path"`
	Depth          *int           `yaml:"depth"`
	Names          []string       `yaml:"names"`
	Extensions     []string       `yaml:"extensions"`
	NoIgnores      *bool          `yaml:"noIgnores"`
	ShowHidden     *bool          `yaml:"showHidden"`
	SortMode       *string        `yaml:"sortMode"`
	Theme          *string        `yaml:"theme"`
	Workers        *int           `yaml:"workers"`
	TickRate       *time.Duration `yaml:"tickRate"`
	ProgressPeriod *time.Duration `yaml:"progressPeriod"`
	LogFile        *string        `yaml:"logFile"`
	LogLevel       *string        `yaml:"logLevel"`
}
