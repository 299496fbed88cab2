package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"fstats/internal/domain"
	"fstats/internal/events"
	"fstats/internal/services"
	"fstats/internal/state"
)

// Options wires the collaborators of a Machine.
type Options struct {
	Scanner        services.Scanner
	Events         *events.Channel
	Logger         logrus.FieldLogger
	ProgressPeriod time.Duration
	Sort           domain.SortMode
}

// Machine owns the application state and applies events to it one at a time.
// Nothing but the goroutine calling Run or Handle touches the state.
type Machine struct {
	state   *state.State
	scanner services.Scanner
	events  *events.Channel
	logger  logrus.FieldLogger
	period  time.Duration
	filters []domain.Filter

	ctx    context.Context
	cancel context.CancelFunc
	scanID uint64
	scan   *services.ScanHandle
	ticker *services.Ticker
}

// NewMachine builds the state machine and starts the first scan. A scan that
// cannot start is returned as an error wrapping domain.ErrConfig.
func NewMachine(cfg domain.ScanConfig, opts Options) (*Machine, error) {
	if opts.Scanner == nil || opts.Events == nil {
		return nil, errors.New("machine needs a scanner and an event channel")
	}
	logger := opts.Logger
	if logger == nil {
		silent := logrus.New()
		silent.SetLevel(logrus.PanicLevel)
		logger = silent
	}
	period := opts.ProgressPeriod
	if period <= 0 {
		period = services.DefaultProgressPeriod
	}
	ctx, cancel := context.WithCancel(context.Background())
	machine := &Machine{
		state:   state.NewState(cfg),
		scanner: opts.Scanner,
		events:  opts.Events,
		logger:  logger,
		period:  period,
		filters: cfg.Filters,
		ctx:     ctx,
		cancel:  cancel,
	}
	if opts.Sort != "" {
		machine.state.Sort = opts.Sort
	}
	if err := machine.startScan(cfg); err != nil {
		cancel()
		return nil, err
	}
	return machine, nil
}

// Run consumes events until a quit transition or ctx is done, calling render
// with a fresh snapshot after every event.
func (machine *Machine) Run(ctx context.Context, render func(state.Snapshot)) error {
	defer machine.Shutdown()
	render(machine.Snapshot())
	for !machine.state.ShouldQuit {
		event, err := machine.events.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, events.ErrClosed) {
				return nil
			}
			return fmt.Errorf("receive event: %w", err)
		}
		machine.Handle(event)
		render(machine.Snapshot())
	}
	return nil
}

// Shutdown stops background producers without waiting for scan workers.
func (machine *Machine) Shutdown() {
	machine.ticker.Stop()
	machine.scan.Cancel()
	machine.cancel()
	machine.events.Close()
}

func (machine *Machine) Snapshot() state.Snapshot {
	return machine.state.Snapshot()
}

func (machine *Machine) Handle(event events.Event) {
	switch typed := event.(type) {
	case events.Input:
		machine.handleInput(typed)
	case events.FolderProgress:
		if machine.current(typed.ScanID) {
			machine.state.SetFolderName(typed.Folder)
		}
	case events.TickerProgress:
		if machine.current(typed.ScanID) {
			machine.state.SetFolderName(typed.Label)
		}
	case events.PartialResults:
		if machine.current(typed.ScanID) {
			machine.state.MergeFragment(typed.Fragment)
		}
	case events.ScanComplete:
		if machine.current(typed.ScanID) {
			machine.ticker.Stop()
			machine.ticker = nil
			machine.state.Complete(typed.Elapsed)
			machine.logger.WithFields(logrus.Fields{
				"scan":    typed.ScanID,
				"folders": len(machine.state.Rows),
				"elapsed": typed.Elapsed,
			}).Info("results ready")
		}
	case events.Resize:
		machine.state.SetViewportHeight(typed.Height)
	case events.Tick:
		machine.state.Ticks++
	}
}

// current reports whether an event belongs to the scan in flight. Events of
// earlier scans are dropped.
func (machine *Machine) current(scanID uint64) bool {
	return machine.state.Scanning && scanID == machine.scanID
}

func (machine *Machine) handleInput(input events.Input) {
	if input.ChangesConfig() {
		machine.reconfigure(input)
		return
	}
	switch input.Action {
	case events.ActionQuit:
		machine.state.ShouldQuit = true
	case events.ActionDismiss:
		if machine.state.ShowHelp {
			machine.state.ShowHelp = false
		} else {
			machine.state.ShouldQuit = true
		}
	case events.ActionToggleHelp:
		machine.state.ToggleHelp()
	case events.ActionSortBySize:
		machine.state.SetSort(domain.SortBySize)
	case events.ActionSortByCount:
		machine.state.SetSort(domain.SortByCount)
	case events.ActionScrollUp:
		machine.state.ScrollUp(1)
	case events.ActionScrollDown:
		machine.state.ScrollDown(1)
	case events.ActionPageUp:
		machine.state.ScrollUp(machine.state.PageSize())
	case events.ActionPageDown:
		machine.state.ScrollDown(machine.state.PageSize())
	case events.ActionHome:
		machine.state.ScrollHome()
	case events.ActionEnd:
		machine.state.ScrollEnd()
	}
}

// reconfigure applies a config-changing input. While a scan is running the
// input is dropped, there is never more than one scan in flight.
func (machine *Machine) reconfigure(input events.Input) {
	if machine.state.Scanning {
		machine.logger.WithField("action", input.Action).Debug("ignoring reconfiguration while scanning")
		return
	}
	current := machine.state.Config
	next := current
	switch input.Action {
	case events.ActionSelectDepth:
		next = current.WithDepth(input.Depth)
	case events.ActionToggleIgnore:
		next = current.ToggleIgnore()
	case events.ActionToggleHidden:
		next = current.ToggleHidden()
	case events.ActionToggleFilters:
		if len(current.Filters) > 0 {
			next = current.WithFilters(nil)
		} else {
			next = current.WithFilters(machine.filters)
		}
	}
	if next.Equal(current) {
		return
	}
	if err := machine.startScan(next); err != nil {
		machine.state.Err = err.Error()
	}
}

// startScan launches a scan and the heartbeat ticker for cfg. On failure the
// previous results and configuration stay in place.
func (machine *Machine) startScan(cfg domain.ScanConfig) error {
	id := machine.scanID + 1
	handle, err := machine.scanner.Start(machine.ctx, services.ScanRequest{ID: id, Config: cfg}, machine.events)
	if err != nil {
		machine.logger.WithError(err).WithField("root", cfg.RootPath).Error("scan did not start")
		return err
	}
	machine.scanID = id
	machine.scan = handle
	machine.state.Reset(cfg)
	machine.ticker.Stop()
	machine.ticker = services.StartProgressTicker(id, machine.period, cfg.RootPath, machine.events, machine.logger)
	return nil
}
