package domain

import "slices"

type SortMode string

const (
	SortBySize  SortMode = "size"
	SortByCount SortMode = "count"
)

// MaxDepth is the deepest rollup level a scan can be configured with.
const MaxDepth = 8

// ScanConfig describes one scan. It is copied by value into every scan so a
// running scan never observes a later reconfiguration.
type ScanConfig struct {
	RootPath           string
	Filters            []Filter
	RespectIgnoreFiles bool
	IncludeHidden      bool
	Depth              int
}

func (cfg ScanConfig) Equal(other ScanConfig) bool {
	return cfg.RootPath == other.RootPath &&
		cfg.RespectIgnoreFiles == other.RespectIgnoreFiles &&
		cfg.IncludeHidden == other.IncludeHidden &&
		cfg.Depth == other.Depth &&
		slices.Equal(cfg.Filters, other.Filters)
}

func (cfg ScanConfig) WithDepth(depth int) ScanConfig {
	cfg.Depth = ClampDepth(depth)
	return cfg
}

func (cfg ScanConfig) WithFilters(filters []Filter) ScanConfig {
	cfg.Filters = slices.Clone(filters)
	return cfg
}

func (cfg ScanConfig) ToggleIgnore() ScanConfig {
	cfg.RespectIgnoreFiles = !cfg.RespectIgnoreFiles
	return cfg
}

func (cfg ScanConfig) ToggleHidden() ScanConfig {
	cfg.IncludeHidden = !cfg.IncludeHidden
	return cfg
}

func ClampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}
