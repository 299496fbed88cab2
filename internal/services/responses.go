package services

import (
	"context"
	"sync"
)

// ScanHandle controls a running scan.
type ScanHandle struct {
	ID     uint64
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newScanHandle(id uint64, cancel context.CancelFunc) *ScanHandle {
	return &ScanHandle{
		ID:     id,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Cancel asks workers to stop at the next directory. It does not wait.
func (handle *ScanHandle) Cancel() {
	if handle == nil || handle.cancel == nil {
		return
	}
	handle.cancel()
}

// Done is closed after the final event of the scan has been sent.
func (handle *ScanHandle) Done() <-chan struct{} {
	return handle.done
}

func (handle *ScanHandle) Wait() {
	<-handle.done
}

func (handle *ScanHandle) finish() {
	handle.once.Do(func() {
		close(handle.done)
	})
}
