package ui

import "fstats/internal/state"

// SnapshotMsg delivers the state after one event-loop iteration.
type SnapshotMsg state.Snapshot
