package events

import (
	"time"

	"fstats/internal/domain"
)

// Event is anything the application state machine consumes.
type Event interface {
	isEvent()
}

// Sink accepts events from any producer.
type Sink interface {
	Send(Event) error
}

// FolderProgress names a folder a scan worker is currently visiting.
type FolderProgress struct {
	ScanID uint64
	Folder string
}

// TickerProgress is the heartbeat label emitted while a scan is running.
type TickerProgress struct {
	ScanID uint64
	Label  string
}

// PartialResults carries one worker's fragment. Each worker sends exactly one.
type PartialResults struct {
	ScanID   uint64
	Fragment domain.AggregateMap
}

// ScanComplete follows every PartialResults of the same scan.
type ScanComplete struct {
	ScanID  uint64
	Elapsed time.Duration
}

type Tick struct{}

// Resize reports the height available for result rows.
type Resize struct {
	Height int
}

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionDismiss
	ActionSortBySize
	ActionSortByCount
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionSelectDepth
	ActionToggleIgnore
	ActionToggleHidden
	ActionToggleFilters
	ActionToggleHelp
)

// Input is a decoded user action. Depth is only set for ActionSelectDepth.
type Input struct {
	Action Action
	Depth  int
}

// ChangesConfig reports whether the input requests a new scan configuration.
func (input Input) ChangesConfig() bool {
	switch input.Action {
	case ActionSelectDepth, ActionToggleIgnore, ActionToggleHidden, ActionToggleFilters:
		return true
	default:
		return false
	}
}

func (FolderProgress) isEvent() {}
func (TickerProgress) isEvent() {}
func (PartialResults) isEvent() {}
func (ScanComplete) isEvent()   {}
func (Tick) isEvent()           {}
func (Resize) isEvent()         {}
func (Input) isEvent()          {}
