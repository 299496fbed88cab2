package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"fstats/internal/events"
	"fstats/internal/state"
)

// chromeHeight is the number of terminal lines taken by the header and footer.
const chromeHeight = 4

// Model adapts bubbletea to the event loop: device input becomes events on
// the sink, and snapshots coming back are rendered. It holds no application
// state of its own.
type Model struct {
	sink     events.Sink
	logger   logrus.FieldLogger
	snapshot state.Snapshot
	keys     KeyMap
	help     help.Model
	styles   uiStyles
	width    int
	height   int
}

func NewModel(sink events.Sink, theme string, initial state.Snapshot, logger logrus.FieldLogger) Model {
	helpModel := help.New()
	helpModel.ShowAll = true
	return Model{
		sink:     sink,
		logger:   logger,
		snapshot: initial,
		keys:     DefaultKeyMap(),
		help:     helpModel,
		styles:   stylesFor(theme),
		width:    100,
		height:   30,
	}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case SnapshotMsg:
		model.snapshot = state.Snapshot(typed)
		if model.snapshot.Quitting {
			return model, tea.Quit
		}
		return model, nil
	case tea.KeyMsg:
		if input, ok := model.keys.Input(typed); ok {
			model.send(input)
		}
		return model, nil
	case tea.MouseMsg:
		switch typed.Type {
		case tea.MouseWheelUp:
			model.send(events.Input{Action: events.ActionScrollUp})
		case tea.MouseWheelDown:
			model.send(events.Input{Action: events.ActionScrollDown})
		}
		return model, nil
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.help.Width = typed.Width
		model.send(events.Resize{Height: contentHeight(typed.Height)})
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) send(event events.Event) {
	if err := model.sink.Send(event); err != nil && model.logger != nil {
		model.logger.WithError(err).Warn("dropping input event")
	}
}

func contentHeight(terminalHeight int) int {
	return max(terminalHeight-chromeHeight, 0)
}
