package domain

import "time"

// RunLease is the exclusive, store-level mutual-exclusion token for a payer
// account. At most one lease exists per business at any time.
type RunLease struct {
	Token      string    `json:"token"`
	BusinessID string    `json:"businessID"`
	RunID      string    `json:"runID,omitempty"` // Set once the run is created, for reconciliation handover
	AcquiredAt time.Time `json:"acquiredAt"`
}
