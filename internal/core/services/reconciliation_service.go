package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/core/ports/gateways"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
)

// ReconcilerConfig tunes the background reconciliation loop.
type ReconcilerConfig struct {
	Interval  time.Duration
	BatchSize int
}

// reconciliationService resolves Pending runs left behind by confirmation
// timeouts. It polls the settlement network and finalizes each run exactly
// once; the retained run lease is released after a terminal finalize.
type reconciliationService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepositoryFacade
	leaseRepo   portsrepo.LeaseRepositoryFacade
	gateway     gateways.SettlementGateway
	cfg         ReconcilerConfig
	now         func() time.Time
}

// NewReconciliationService creates the Pending-run reconciler.
func NewReconciliationService(
	payrollRepo portsrepo.PayrollRepositoryFacade,
	leaseRepo portsrepo.LeaseRepositoryFacade,
	gateway gateways.SettlementGateway,
	cfg ReconcilerConfig,
) portssvc.ReconcilerSvc {
	return &reconciliationService{
		payrollRepo: payrollRepo,
		leaseRepo:   leaseRepo,
		gateway:     gateway,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Run loops ReconcileOnce at the configured interval until ctx is done.
func (s *reconciliationService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.LogInfo(ctx, "reconciler started", slog.Duration("interval", s.cfg.Interval))
	for {
		select {
		case <-ctx.Done():
			s.LogInfo(ctx, "reconciler stopped")
			return
		case <-ticker.C:
			resolved, err := s.ReconcileOnce(ctx)
			if err != nil {
				s.LogError(ctx, err, "reconcile sweep failed")
				continue
			}
			if resolved > 0 {
				s.LogInfo(ctx, "reconcile sweep resolved runs", slog.Int("resolved", resolved))
			}
		}
	}
}

// ReconcileOnce sweeps Pending runs once and returns how many reached a
// terminal state. A run the network still reports Pending is left for the
// next sweep; reconciliation never invents an outcome.
func (s *reconciliationService) ReconcileOnce(ctx context.Context) (int, error) {
	pending, err := s.payrollRepo.ListPendingRuns(ctx, s.now(), s.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, run := range pending {
		if ctx.Err() != nil {
			return resolved, ctx.Err()
		}
		done, err := s.reconcileRun(ctx, run)
		if err != nil {
			s.LogError(ctx, err, "failed to reconcile run", slog.String("run_id", run.RunID))
			continue
		}
		if done {
			resolved++
		}
	}
	return resolved, nil
}

func (s *reconciliationService) reconcileRun(ctx context.Context, run domain.PayrollRun) (bool, error) {
	status, err := s.gateway.GetTransferStatus(ctx, run.SettlementReference)
	if err != nil {
		return false, err
	}

	var outcome domain.RunStatus
	switch status {
	case domain.TransferConfirmed:
		outcome = domain.RunSuccess
	case domain.TransferReverted:
		outcome = domain.RunFailed
	default:
		// Still unresolved on the network side.
		return false, nil
	}

	paidRecipientIDs := []string(nil)
	if outcome == domain.RunSuccess {
		paidRecipientIDs = paidIDs(run)
	}

	err = s.payrollRepo.FinalizeRun(ctx, run.RunID, outcome, paidRecipientIDs, s.now())
	if err != nil {
		// Lost the race to another finalizer; the run is already terminal.
		if errors.Is(err, apperrors.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	if err := s.leaseRepo.ReleaseLeaseByRun(ctx, run.RunID); err != nil {
		s.LogError(ctx, err, "failed to release retained lease", slog.String("run_id", run.RunID))
	}

	s.LogInfo(ctx, "pending run reconciled",
		slog.String("run_id", run.RunID),
		slog.String("outcome", string(outcome)))
	return true, nil
}
