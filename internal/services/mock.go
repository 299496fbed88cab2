package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fstats/internal/domain"
	"fstats/internal/events"
)

// MockScanner replays prepared fragments instead of touching the filesystem.
// Results are only emitted when Release is called, so a test can observe the
// state machine while a scan is in flight.
type MockScanner struct {
	mu        sync.Mutex
	Fragments func(cfg domain.ScanConfig) []domain.AggregateMap
	Err       error
	Requests  []ScanRequest
	pending   []mockScan
}

type mockScan struct {
	req  ScanRequest
	sink events.Sink
}

func NewMockScanner(fragments func(cfg domain.ScanConfig) []domain.AggregateMap) *MockScanner {
	return &MockScanner{Fragments: fragments}
}

func (scanner *MockScanner) Start(ctx context.Context, req ScanRequest, sink events.Sink) (*ScanHandle, error) {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	if scanner.Err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfig, scanner.Err)
	}
	scanner.Requests = append(scanner.Requests, req)
	scanner.pending = append(scanner.pending, mockScan{req: req, sink: sink})
	_, cancel := context.WithCancel(ctx)
	handle := newScanHandle(req.ID, cancel)
	handle.finish()
	return handle, nil
}

// Release emits the fragments and completion of every started scan.
func (scanner *MockScanner) Release() {
	scanner.mu.Lock()
	pending := scanner.pending
	scanner.pending = nil
	scanner.mu.Unlock()

	for _, scan := range pending {
		var fragments []domain.AggregateMap
		if scanner.Fragments != nil {
			fragments = scanner.Fragments(scan.req.Config)
		}
		for _, fragment := range fragments {
			_ = scan.sink.Send(events.PartialResults{ScanID: scan.req.ID, Fragment: fragment})
		}
		_ = scan.sink.Send(events.ScanComplete{ScanID: scan.req.ID, Elapsed: time.Millisecond})
	}
}

func (scanner *MockScanner) LastRequest() ScanRequest {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	if len(scanner.Requests) == 0 {
		return ScanRequest{}
	}
	return scanner.Requests[len(scanner.Requests)-1]
}

func (scanner *MockScanner) StartCount() int {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	return len(scanner.Requests)
}
