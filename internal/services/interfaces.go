package services

import (
	"context"

	"fstats/internal/events"
)

// Scanner starts a scan whose results arrive on sink. Start returns an error
// wrapping domain.ErrConfig, and emits nothing, when the scan cannot begin.
type Scanner interface {
	Start(ctx context.Context, req ScanRequest, sink events.Sink) (*ScanHandle, error)
}
