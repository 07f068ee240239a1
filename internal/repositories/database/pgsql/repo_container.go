package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool, leaseTTL time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PayrollRepo:   newPgxPayrollRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		RecipientRepo: newPgxRecipientRepository(dbPool),
		ScheduleRepo:  newPgxScheduleRepository(dbPool),
		LeaseRepo:     newPgxLeaseRepository(dbPool, leaseTTL),
		AlertRepo:     newPgxAlertRepository(dbPool),
	}
}
