package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"fstats/internal/config"
	"fstats/internal/events"
	"fstats/internal/services"
	"fstats/internal/state"
	"fstats/internal/ui"
)

// Run starts the scan, the event loop and the terminal UI, and returns once
// the user quits.
func Run(cfg config.Config) error {
	logger, closer, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	scanCfg, err := config.Resolve(cfg)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"root":    scanCfg.RootPath,
		"depth":   scanCfg.Depth,
		"filters": len(scanCfg.Filters),
	}).Info("fstats starting")

	channel := events.NewChannel()
	scanner := services.NewFSScanner(logger).WithWorkers(cfg.Workers)
	machine, err := NewMachine(scanCfg, Options{
		Scanner:        scanner,
		Events:         channel,
		Logger:         logger,
		ProgressPeriod: cfg.ProgressPeriod,
		Sort:           cfg.SortMode,
	})
	if err != nil {
		return err
	}
	ticks := services.StartTickSource(cfg.TickRate, channel, logger)
	defer ticks.Stop()

	program := tea.NewProgram(ui.NewModel(channel, cfg.Theme, machine.Snapshot(), logger), tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loopDone := make(chan error, 1)
	go func() {
		err := machine.Run(ctx, func(snapshot state.Snapshot) {
			program.Send(ui.SnapshotMsg(snapshot))
		})
		program.Quit()
		loopDone <- err
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		<-loopDone
		return fmt.Errorf("terminal ui: %w", err)
	}
	cancel()
	if err := <-loopDone; err != nil {
		logger.WithError(err).Error("event loop stopped")
		return err
	}
	logger.Info("fstats exiting")
	return nil
}
