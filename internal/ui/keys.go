package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fstats/internal/domain"
	"fstats/internal/events"
)

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	SortSize  key.Binding
	SortCount key.Binding
	Depth     key.Binding
	Ignores   key.Binding
	Hidden    key.Binding
	Filters   key.Binding
	Help      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	depthKeys := make([]string, 0, domain.MaxDepth)
	for depth := 1; depth <= domain.MaxDepth; depth++ {
		depthKeys = append(depthKeys, strconv.Itoa(depth))
	}
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),
		SortSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by size"),
		),
		SortCount: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sort by files"),
		),
		Depth: key.NewBinding(
			key.WithKeys(depthKeys...),
			key.WithHelp("1-"+strconv.Itoa(domain.MaxDepth), "depth"),
		),
		Ignores: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle ignore files"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle hidden"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle filters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "close help / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp and FullHelp make KeyMap usable with bubbles/help.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.SortSize, keys.SortCount, keys.Depth, keys.Help, keys.Dismiss}
}

func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End},
		{keys.SortSize, keys.SortCount, keys.Depth},
		{keys.Ignores, keys.Hidden, keys.Filters},
		{keys.Help, keys.Dismiss, keys.Quit},
	}
}

// Input translates a key press into the event vocabulary of the state machine.
func (keys KeyMap) Input(msg tea.KeyMsg) (events.Input, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return events.Input{Action: events.ActionQuit}, true
	case key.Matches(msg, keys.Dismiss):
		return events.Input{Action: events.ActionDismiss}, true
	case key.Matches(msg, keys.Help):
		return events.Input{Action: events.ActionToggleHelp}, true
	case key.Matches(msg, keys.SortSize):
		return events.Input{Action: events.ActionSortBySize}, true
	case key.Matches(msg, keys.SortCount):
		return events.Input{Action: events.ActionSortByCount}, true
	case key.Matches(msg, keys.Up):
		return events.Input{Action: events.ActionScrollUp}, true
	case key.Matches(msg, keys.Down):
		return events.Input{Action: events.ActionScrollDown}, true
	case key.Matches(msg, keys.PageUp):
		return events.Input{Action: events.ActionPageUp}, true
	case key.Matches(msg, keys.PageDown):
		return events.Input{Action: events.ActionPageDown}, true
	case key.Matches(msg, keys.Home):
		return events.Input{Action: events.ActionHome}, true
	case key.Matches(msg, keys.End):
		return events.Input{Action: events.ActionEnd}, true
	case key.Matches(msg, keys.Depth):
		depth, err := strconv.Atoi(msg.String())
		if err != nil {
			return events.Input{}, false
		}
		return events.Input{Action: events.ActionSelectDepth, Depth: depth}, true
	case key.Matches(msg, keys.Ignores):
		return events.Input{Action: events.ActionToggleIgnore}, true
	case key.Matches(msg, keys.Hidden):
		return events.Input{Action: events.ActionToggleHidden}, true
	case key.Matches(msg, keys.Filters):
		return events.Input{Action: events.ActionToggleFilters}, true
	default:
		return events.Input{}, false
	}
}
