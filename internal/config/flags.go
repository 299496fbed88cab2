package config

import "github.com/spf13/pflag"

// Flags holds command-line overrides. Only flags the user actually set are
// applied over the file configuration.
type Flags struct {
	ConfigFile string
	Path       string
	Depth      int
	Names      []string
	Extensions []string
	NoIgnores  bool
	ShowHidden bool
	Workers    int
	LogFile    string
	LogLevel   string
}

func (flags *Flags) Register(set *pflag.FlagSet) {
	defaults := DefaultConfig()
	set.StringVarP(&flags.ConfigFile, "config", "c", "", "Config file path (default: user config dir)")
	set.StringVarP(&flags.Path, "path", "p", defaults.Path, "Path to scan")
	set.IntVarP(&flags.Depth, "depth", "d", defaults.Depth, "Folder depth to report on")
	set.StringSliceVarP(&flags.Names, "filter", "f", nil, "Only count files whose name contains this text")
	set.StringSliceVarP(&flags.Extensions, "extension", "e", nil, "Only count files whose extension contains this text")
	set.BoolVarP(&flags.NoIgnores, "no-ignores", "i", false, "Do not honor .gitignore and .ignore files")
	set.BoolVarP(&flags.ShowHidden, "hidden", "H", false, "Include hidden files and folders")
	set.IntVarP(&flags.Workers, "workers", "w", 0, "Number of scan workers (default: CPU count)")
	set.StringVar(&flags.LogFile, "log-file", defaults.LogFile, "Log file path")
	set.StringVar(&flags.LogLevel, "log-level", defaults.LogLevel, "Log level")
}

func (flags *Flags) Apply(set *pflag.FlagSet, base Config) Config {
	merged := base
	if set.Changed("path") {
		merged.Path = flags.Path
	}
	if set.Changed("depth") {
		merged.Depth = flags.Depth
	}
	if set.Changed("filter") {
		merged.Names = flags.Names
	}
	if set.Changed("extension") {
		merged.Extensions = flags.Extensions
	}
	if set.Changed("no-ignores") {
		merged.NoIgnores = flags.NoIgnores
	}
	if set.Changed("hidden") {
		merged.ShowHidden = flags.ShowHidden
	}
	if set.Changed("workers") {
		merged.Workers = flags.Workers
	}
	if set.Changed("log-file") {
		merged.LogFile = flags.LogFile
	}
	if set.Changed("log-level") {
		merged.LogLevel = flags.LogLevel
	}
	return merged
}
