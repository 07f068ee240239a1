package services

import "context"

// ReconcilerSvc resolves Pending runs by polling the settlement network until
// a terminal state is observed.
type ReconcilerSvc interface {
	// ReconcileOnce performs a single sweep over Pending runs and returns
	// how many reached a terminal state.
	ReconcileOnce(ctx context.Context) (int, error)

	// Run loops ReconcileOnce at the configured interval until ctx is done.
	Run(ctx context.Context)
}

// ServiceContainer bundles the engine's service facades for route wiring.
type ServiceContainer struct {
	Schedule     ScheduleSvcFacade
	Disbursement DisbursementSvcFacade
	Reconciler   ReconcilerSvc
	Reporting    ReportingSvcFacade
	Recipient    RecipientSvcFacade
}
