package services

import (
	"github.com/streampay-labs/payrolld/internal/core/ports/gateways"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gateway gateways.SettlementGateway) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Schedule = NewScheduleService(repos.ScheduleRepo, repos.RecipientRepo)
	container.Recipient = NewRecipientService(repos.RecipientRepo)
	container.Reporting = NewReportingService(repos.PaymentRepo)

	container.Disbursement = NewDisbursementService(
		repos.PayrollRepo,
		repos.PaymentRepo,
		repos.RecipientRepo,
		repos.LeaseRepo,
		repos.AlertRepo,
		gateway,
		DisbursementConfig{
			ConfirmTimeout:     cfg.SettlementConfirmTimeout,
			PollInterval:       cfg.SettlementPollInterval,
			LedgerRetryMax:     uint64(cfg.LedgerRetryMax),
			LedgerRetryMaxWait: cfg.LedgerRetryMaxWait,
			CurrencyCode:       cfg.CurrencyCode,
		},
	)

	container.Reconciler = NewReconciliationService(
		repos.PayrollRepo,
		repos.LeaseRepo,
		gateway,
		ReconcilerConfig{
			Interval:  cfg.ReconcileInterval,
			BatchSize: cfg.ReconcileBatch,
		},
	)

	return container
}

var (
	_ portssvc.ScheduleSvcFacade     = (*scheduleService)(nil)
	_ portssvc.DisbursementSvcFacade = (*disbursementService)(nil)
	_ portssvc.ReconcilerSvc         = (*reconciliationService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
	_ portssvc.RecipientSvcFacade    = (*recipientService)(nil)
)
