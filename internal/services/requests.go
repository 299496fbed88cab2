package services

import "fstats/internal/domain"

// ScanRequest tags a scan configuration with an ID that every emitted event
// carries, so consumers can drop events from superseded scans.
type ScanRequest struct {
	ID     uint64
	Config domain.ScanConfig
}
