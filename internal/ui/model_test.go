package ui

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fstats/internal/domain"
	"fstats/internal/events"
	"fstats/internal/state"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func nextEvent(t *testing.T, channel *events.Channel) events.Event {
	t.Helper()
	event, ok := channel.TryNext()
	require.True(t, ok, "expected an event")
	return event
}

func TestKeyMap_Input(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want events.Input
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, events.Input{Action: events.ActionQuit}},
		{"q dismisses", runeKey('q'), events.Input{Action: events.ActionDismiss}},
		{"esc dismisses", tea.KeyMsg{Type: tea.KeyEsc}, events.Input{Action: events.ActionDismiss}},
		{"help", runeKey('?'), events.Input{Action: events.ActionToggleHelp}},
		{"sort size", runeKey('s'), events.Input{Action: events.ActionSortBySize}},
		{"sort count", runeKey('c'), events.Input{Action: events.ActionSortByCount}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, events.Input{Action: events.ActionScrollUp}},
		{"j", runeKey('j'), events.Input{Action: events.ActionScrollDown}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, events.Input{Action: events.ActionPageDown}},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, events.Input{Action: events.ActionHome}},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, events.Input{Action: events.ActionEnd}},
		{"depth 3", runeKey('3'), events.Input{Action: events.ActionSelectDepth, Depth: 3}},
		{"depth 8", runeKey('8'), events.Input{Action: events.ActionSelectDepth, Depth: 8}},
		{"ignores", runeKey('i'), events.Input{Action: events.ActionToggleIgnore}},
		{"hidden", runeKey('h'), events.Input{Action: events.ActionToggleHidden}},
		{"filters", runeKey('f'), events.Input{Action: events.ActionToggleFilters}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keys.Input(tc.msg)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := keys.Input(runeKey('9'))
	assert.False(t, ok)
	_, ok = keys.Input(runeKey('x'))
	assert.False(t, ok)
}

func TestModel_KeyPressSendsInput(t *testing.T) {
	channel := events.NewChannel()
	model := NewModel(channel, "dark", state.Snapshot{}, nil)

	_, cmd := model.Update(runeKey('2'))

	assert.Nil(t, cmd)
	assert.Equal(t, events.Input{Action: events.ActionSelectDepth, Depth: 2}, nextEvent(t, channel))
}

func TestModel_MouseWheelScrolls(t *testing.T) {
	channel := events.NewChannel()
	model := NewModel(channel, "dark", state.Snapshot{}, nil)

	model.Update(tea.MouseMsg{Type: tea.MouseWheelDown})
	model.Update(tea.MouseMsg{Type: tea.MouseWheelUp})

	assert.Equal(t, events.Input{Action: events.ActionScrollDown}, nextEvent(t, channel))
	assert.Equal(t, events.Input{Action: events.ActionScrollUp}, nextEvent(t, channel))
}

func TestModel_ResizeSubtractsChrome(t *testing.T) {
	channel := events.NewChannel()
	model := NewModel(channel, "dark", state.Snapshot{}, nil)

	model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 2})

	assert.Equal(t, events.Resize{Height: 24 - chromeHeight}, nextEvent(t, channel))
	assert.Equal(t, events.Resize{Height: 0}, nextEvent(t, channel))
}

func TestModel_ClosedSinkIsIgnored(t *testing.T) {
	channel := events.NewChannel()
	channel.Close()
	model := NewModel(channel, "dark", state.Snapshot{}, nil)

	assert.NotPanics(t, func() { model.Update(runeKey('q')) })
}

func TestModel_QuittingSnapshotQuitsProgram(t *testing.T) {
	model := NewModel(events.NewChannel(), "dark", state.Snapshot{}, nil)

	updated, cmd := model.Update(SnapshotMsg(state.Snapshot{Quitting: true}))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, updated.View())
}

func sampleSnapshot() state.Snapshot {
	rows := []state.Row{
		{Path: "", Stat: domain.FolderStat{Size: 2_000_000, Files: 1200}},
		{Path: "/src", Stat: domain.FolderStat{Size: 1_500_000, Files: 900}},
	}
	return state.Snapshot{
		Config:   domain.ScanConfig{RootPath: "/home/me/project", Depth: 2, RespectIgnoreFiles: true, Filters: []domain.Filter{domain.Extension("go")}},
		Rows:     rows,
		Totals:   rows[0].Stat,
		PageSize: 4,
		Sort:     domain.SortBySize,
		ScanTime: 1500 * time.Millisecond,
	}
}

func TestView_RendersRowsAndStatus(t *testing.T) {
	model := NewModel(events.NewChannel(), "light", state.Snapshot{}, nil)
	updated, _ := model.Update(SnapshotMsg(sampleSnapshot()))

	view := updated.View()

	assert.Contains(t, view, "/home/me/project")
	assert.Contains(t, view, "project/src")
	assert.Contains(t, view, "2.0 MB")
	assert.Contains(t, view, "1,200")
	assert.Contains(t, view, "75.0%")
	assert.Contains(t, view, "Scanned in 1.5s")
	assert.Contains(t, view, "Depth: 2")
	assert.Contains(t, view, "Filters: extension:go")
	assert.Contains(t, view, "IDLE")
}

func TestView_ScanningAndErrors(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.Scanning = true
	snapshot.FolderName = "src/vendor"
	model := NewModel(events.NewChannel(), "dark", state.Snapshot{}, nil)

	updated, _ := model.Update(SnapshotMsg(snapshot))
	assert.Contains(t, updated.View(), "SCANNING")
	assert.Contains(t, updated.View(), "src/vendor")

	snapshot.Err = "config: /gone is not a directory"
	updated, _ = updated.Update(SnapshotMsg(snapshot))
	assert.Contains(t, updated.View(), "Error: config: /gone is not a directory")
}

func TestView_HelpOverlay(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.ShowHelp = true
	model := NewModel(events.NewChannel(), "dark", state.Snapshot{}, nil)

	updated, _ := model.Update(SnapshotMsg(snapshot))
	view := updated.View()

	assert.Contains(t, view, "toggle ignore files")
	assert.False(t, strings.Contains(view, "project/src"))
}

func TestView_FillsViewportHeight(t *testing.T) {
	model := NewModel(events.NewChannel(), "dark", sampleSnapshot(), nil)
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	lines := strings.Split(updated.View(), "\n")
	assert.Len(t, lines, 20)
}

func TestPercentBar(t *testing.T) {
	assert.Equal(t, "░░░░", percentBar(0, 4))
	assert.Equal(t, "██░░", percentBar(50, 4))
	assert.Equal(t, "████", percentBar(100, 4))
	assert.Equal(t, "", percentBar(50, 0))
}

func TestTrimStatus(t *testing.T) {
	assert.Equal(t, "short", trimStatus("short", 40))
	assert.Equal(t, "anything", trimStatus("anything", 0))

	trimmed := trimStatus("données/überlänge/日本語のフォルダ名", 16)
	assert.True(t, utf8.ValidString(trimmed))
	assert.True(t, strings.HasSuffix(trimmed, "..."))
	assert.LessOrEqual(t, lipgloss.Width(trimmed), 15)
}
