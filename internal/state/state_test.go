package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fstats/internal/domain"
)

func stateWithRows(t *testing.T, count int) *State {
	t.Helper()
	appState := NewState(domain.ScanConfig{RootPath: "/data", Depth: 1})
	appState.Reset(appState.Config)
	fragment := domain.AggregateMap{}
	for i := 0; i < count; i++ {
		fragment[fmt.Sprintf("/dir%02d", i)] = domain.FolderStat{Size: uint64(i + 1), Files: uint64(count - i)}
	}
	appState.MergeFragment(fragment)
	appState.Complete(time.Second)
	require.Len(t, appState.Rows, count)
	return appState
}

func TestState_ComputeMaxScroll(t *testing.T) {
	appState := stateWithRows(t, 10)

	appState.SetViewportHeight(3 * ItemHeight)
	assert.Equal(t, 7, appState.MaxScroll)

	appState.SetViewportHeight(100 * ItemHeight)
	assert.Equal(t, 0, appState.MaxScroll)

	appState.SetViewportHeight(ItemHeight - 1)
	assert.Equal(t, 10, appState.MaxScroll)

	appState.SetViewportHeight(0)
	assert.Equal(t, 10, appState.MaxScroll)
	assert.Equal(t, 0, appState.PageSize())

	appState.SetViewportHeight(-5)
	assert.Equal(t, 0, appState.ViewportHeight)
	assert.Equal(t, 10, appState.MaxScroll)
}

func TestState_ScrollIsClamped(t *testing.T) {
	appState := stateWithRows(t, 10)
	appState.SetViewportHeight(4 * ItemHeight)
	require.Equal(t, 6, appState.MaxScroll)

	steps := []func(){
		func() { appState.ScrollDown(1) },
		func() { appState.ScrollDown(100) },
		func() { appState.ScrollUp(2) },
		func() { appState.ScrollUp(100) },
		func() { appState.ScrollEnd() },
		func() { appState.SetViewportHeight(8 * ItemHeight) },
		func() { appState.ScrollDown(appState.PageSize()) },
		func() { appState.ScrollHome() },
		func() { appState.SetViewportHeight(0) },
		func() { appState.ScrollEnd() },
		func() { appState.SetViewportHeight(20 * ItemHeight) },
	}
	for i, step := range steps {
		step()
		assert.GreaterOrEqual(t, appState.Scroll, 0, "step %d", i)
		assert.LessOrEqual(t, appState.Scroll, appState.MaxScroll, "step %d", i)
	}
	assert.Equal(t, 0, appState.Scroll)
}

func TestState_SortDescending(t *testing.T) {
	appState := stateWithRows(t, 5)
	assert.Equal(t, "/dir04", appState.Rows[0].Path)
	assert.Equal(t, uint64(5), appState.Rows[0].Stat.Size)

	appState.SetViewportHeight(ItemHeight)
	appState.ScrollDown(3)
	appState.SetSort(domain.SortByCount)
	assert.Equal(t, 0, appState.Scroll)
	assert.Equal(t, "/dir00", appState.Rows[0].Path)
	for i := 1; i < len(appState.Rows); i++ {
		assert.GreaterOrEqual(t, appState.Rows[i-1].Stat.Files, appState.Rows[i].Stat.Files)
	}
}

func TestSortRows_Idempotent(t *testing.T) {
	rows := []Row{
		{Path: "/b", Stat: domain.FolderStat{Size: 10, Files: 1}},
		{Path: "/a", Stat: domain.FolderStat{Size: 10, Files: 2}},
		{Path: "/c", Stat: domain.FolderStat{Size: 30, Files: 2}},
		{Path: "", Stat: domain.FolderStat{Size: 50, Files: 5}},
	}
	for _, mode := range []domain.SortMode{domain.SortBySize, domain.SortByCount} {
		SortRows(rows, mode)
		once := append([]Row(nil), rows...)
		SortRows(rows, mode)
		assert.Equal(t, once, rows)
	}

	SortRows(rows, domain.SortBySize)
	assert.Equal(t, []string{"", "/c", "/a", "/b"}, []string{rows[0].Path, rows[1].Path, rows[2].Path, rows[3].Path})
}

func TestState_ResetClearsResults(t *testing.T) {
	appState := stateWithRows(t, 3)
	appState.Err = "old"
	next := appState.Config.WithDepth(2)

	appState.Reset(next)
	assert.True(t, appState.Scanning)
	assert.Empty(t, appState.Rows)
	assert.Empty(t, appState.Aggregate)
	assert.Equal(t, 2, appState.Config.Depth)
	assert.Equal(t, "/data", appState.FolderName)
	assert.Empty(t, appState.Err)
	assert.Zero(t, appState.ScanTime)
}

func TestSnapshot(t *testing.T) {
	appState := NewState(domain.ScanConfig{RootPath: "/data", Depth: 1})
	snapshot := appState.Snapshot()
	assert.Nil(t, snapshot.VisibleRows())
	assert.Equal(t, 0.0, snapshot.SizePercent(Row{Stat: domain.FolderStat{Size: 5}}))

	appState.MergeFragment(domain.AggregateMap{
		"":   {Size: 40, Files: 4},
		"/a": {Size: 30, Files: 1},
		"/b": {Size: 10, Files: 3},
	})
	appState.SetViewportHeight(2 * ItemHeight)
	appState.ScrollDown(1)
	snapshot = appState.Snapshot()

	visible := snapshot.VisibleRows()
	require.Len(t, visible, 2)
	assert.Equal(t, "/a", visible[0].Path)
	assert.Equal(t, 75.0, snapshot.SizePercent(visible[0]))
	assert.Equal(t, 75.0, snapshot.FilesPercent(visible[1]))

	snapshot.Rows[0].Path = "mutated"
	assert.Equal(t, "", appState.Rows[0].Path)
}
