package state

import (
	"slices"
	"time"

	"fstats/internal/domain"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Config     domain.ScanConfig
	Scanning   bool
	FolderName string
	Rows       []Row
	Totals     domain.FolderStat
	Scroll     int
	MaxScroll  int
	PageSize   int
	Sort       domain.SortMode
	ShowHelp   bool
	ScanTime   time.Duration
	Err        string
	Ticks      int
	Quitting   bool
}

func (appState *State) Snapshot() Snapshot {
	cfg := appState.Config
	cfg.Filters = slices.Clone(cfg.Filters)
	return Snapshot{
		Config:     cfg,
		Scanning:   appState.Scanning,
		FolderName: appState.FolderName,
		Rows:       slices.Clone(appState.Rows),
		Totals:     appState.Totals(),
		Scroll:     appState.Scroll,
		MaxScroll:  appState.MaxScroll,
		PageSize:   appState.PageSize(),
		Sort:       appState.Sort,
		ShowHelp:   appState.ShowHelp,
		ScanTime:   appState.ScanTime,
		Err:        appState.Err,
		Ticks:      appState.Ticks,
		Quitting:   appState.ShouldQuit,
	}
}

// VisibleRows returns the rows inside the viewport.
func (snapshot Snapshot) VisibleRows() []Row {
	if snapshot.PageSize <= 0 || snapshot.Scroll >= len(snapshot.Rows) {
		return nil
	}
	end := min(len(snapshot.Rows), snapshot.Scroll+snapshot.PageSize)
	return snapshot.Rows[snapshot.Scroll:end]
}

// SizePercent is a row's share of the total size, 0 while nothing is counted.
func (snapshot Snapshot) SizePercent(row Row) float64 {
	return domain.Percent(row.Stat.Size, snapshot.Totals.Size)
}

func (snapshot Snapshot) FilesPercent(row Row) float64 {
	return domain.Percent(row.Stat.Files, snapshot.Totals.Files)
}
