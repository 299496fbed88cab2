package services

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fstats/internal/events"
)

const (
	DefaultProgressPeriod = 3 * time.Second
	DefaultTickRate       = 250 * time.Millisecond
)

// Ticker emits events on a fixed period from its own goroutine until stopped.
type Ticker struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// StartProgressTicker emits the label immediately and then, every period,
// the label followed by one more dot than the time before. It is a heartbeat
// for trees where folder progress from the workers is sparse.
func StartProgressTicker(scanID uint64, period time.Duration, label string, sink events.Sink, logger logrus.FieldLogger) *Ticker {
	sendOrLog(sink, events.TickerProgress{ScanID: scanID, Label: label}, logger)
	return startTicker(period, func(count int) {
		dotted := label + strings.Repeat(".", count)
		sendOrLog(sink, events.TickerProgress{ScanID: scanID, Label: dotted}, logger)
	})
}

// StartTickSource emits a UI Tick every period.
func StartTickSource(period time.Duration, sink events.Sink, logger logrus.FieldLogger) *Ticker {
	return startTicker(period, func(int) {
		sendOrLog(sink, events.Tick{}, logger)
	})
}

func startTicker(period time.Duration, emit func(count int)) *Ticker {
	ticker := &Ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(ticker.done)
		timer := time.NewTicker(period)
		defer timer.Stop()
		count := 0
		for {
			select {
			case <-ticker.stop:
				return
			case <-timer.C:
				count++
				emit(count)
			}
		}
	}()
	return ticker
}

// Stop signals the ticker to exit without waiting for it. It is safe to call
// more than once and on a nil Ticker.
func (ticker *Ticker) Stop() {
	if ticker == nil {
		return
	}
	ticker.once.Do(func() {
		close(ticker.stop)
	})
}

// Done is closed once the ticker goroutine has exited.
func (ticker *Ticker) Done() <-chan struct{} {
	return ticker.done
}
