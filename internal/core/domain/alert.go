package domain

import "time"

// LedgerAlert is the operator escalation record written when a post-settlement
// ledger write exhausts its retries. It carries enough detail to replay the
// commit by hand.
type LedgerAlert struct {
	AlertID             string    `json:"alertID"`
	BusinessID          string    `json:"businessID"`
	RunID               string    `json:"runID"`
	SettlementReference string    `json:"settlementReference"`
	Detail              string    `json:"detail"`
	CreatedAt           time.Time `json:"createdAt"`
}
