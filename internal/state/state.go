package state

import (
	"cmp"
	"slices"
	"time"

	"fstats/internal/domain"
)

// ItemHeight is the number of terminal lines one rendered row occupies.
const ItemHeight = 4

type Row struct {
	Path string
	Stat domain.FolderStat
}

// State is owned by the event loop and only ever mutated from it.
type State struct {
	Config         domain.ScanConfig
	Scanning       bool
	FolderName     string
	Aggregate      domain.AggregateMap
	Rows           []Row
	Scroll         int
	MaxScroll      int
	ViewportHeight int
	Sort           domain.SortMode
	ShowHelp       bool
	ScanTime       time.Duration
	ShouldQuit     bool
	Err            string
	Ticks          int
}

func NewState(cfg domain.ScanConfig) *State {
	return &State{
		Config:    cfg,
		Aggregate: make(domain.AggregateMap),
		Sort:      domain.SortBySize,
	}
}

// Reset prepares for a fresh scan of cfg.
func (appState *State) Reset(cfg domain.ScanConfig) {
	appState.Config = cfg
	appState.Scanning = true
	appState.FolderName = cfg.RootPath
	appState.Aggregate = make(domain.AggregateMap)
	appState.Rows = nil
	appState.Scroll = 0
	appState.ScanTime = 0
	appState.Err = ""
	appState.ComputeMaxScroll()
}

func (appState *State) SetFolderName(name string) {
	appState.FolderName = name
}

// MergeFragment folds a worker fragment into the aggregate and refreshes the
// rows, so partial totals are visible while the scan runs.
func (appState *State) MergeFragment(fragment domain.AggregateMap) {
	appState.Aggregate.MergeFrom(fragment)
	appState.rebuildRows()
}

// Complete freezes the aggregate into sorted rows.
func (appState *State) Complete(elapsed time.Duration) {
	appState.Scanning = false
	appState.ScanTime = elapsed
	appState.rebuildRows()
}

func (appState *State) SetSort(mode domain.SortMode) {
	appState.Sort = mode
	SortRows(appState.Rows, mode)
	appState.Scroll = 0
}

func (appState *State) ScrollUp(lines int) {
	appState.Scroll = clamp(appState.Scroll-lines, 0, appState.MaxScroll)
}

func (appState *State) ScrollDown(lines int) {
	appState.Scroll = clamp(appState.Scroll+lines, 0, appState.MaxScroll)
}

func (appState *State) ScrollHome() {
	appState.Scroll = 0
}

func (appState *State) ScrollEnd() {
	appState.Scroll = appState.MaxScroll
}

// PageSize is the number of rows that fit in the viewport.
func (appState *State) PageSize() int {
	return max(appState.ViewportHeight, 0) / ItemHeight
}

func (appState *State) SetViewportHeight(height int) {
	appState.ViewportHeight = max(height, 0)
	appState.ComputeMaxScroll()
}

// ComputeMaxScroll derives the largest scroll offset from the row count and
// viewport height, then clamps the current offset into range.
func (appState *State) ComputeMaxScroll() {
	visible := appState.PageSize()
	if visible > len(appState.Rows) {
		appState.MaxScroll = 0
	} else {
		appState.MaxScroll = len(appState.Rows) - visible
	}
	appState.Scroll = clamp(appState.Scroll, 0, appState.MaxScroll)
}

func (appState *State) ToggleHelp() {
	appState.ShowHelp = !appState.ShowHelp
}

// Totals is the whole-tree stat, stored under the root key.
func (appState *State) Totals() domain.FolderStat {
	return appState.Aggregate[""]
}

func (appState *State) rebuildRows() {
	rows := make([]Row, 0, len(appState.Aggregate))
	for path, stat := range appState.Aggregate {
		rows = append(rows, Row{Path: path, Stat: stat})
	}
	SortRows(rows, appState.Sort)
	appState.Rows = rows
	appState.ComputeMaxScroll()
}

// SortRows orders rows largest first by the given key. Ties fall back to
// path order so repeated sorts are stable.
func SortRows(rows []Row, mode domain.SortMode) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		if order := cmp.Compare(sortKey(b, mode), sortKey(a, mode)); order != 0 {
			return order
		}
		return cmp.Compare(a.Path, b.Path)
	})
}

func sortKey(row Row, mode domain.SortMode) uint64 {
	if mode == domain.SortByCount {
		return row.Stat.Files
	}
	return row.Stat.Size
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
