package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/streampay-labs/payrolld/internal/apperrors"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
)

// PgxLeaseRepository implements the run lease on a dedicated table keyed by
// business_id. Acquisition is a single conditional statement, so exclusion
// holds across service instances sharing the database.
type PgxLeaseRepository struct {
	BaseRepository
	ttl time.Duration
}

func newPgxLeaseRepository(pool *pgxpool.Pool, ttl time.Duration) portsrepo.LeaseRepositoryFacade {
	return &PgxLeaseRepository{BaseRepository: BaseRepository{Pool: pool}, ttl: ttl}
}

var _ portsrepo.LeaseRepositoryFacade = (*PgxLeaseRepository)(nil)

// AcquireLease claims the business's run lease or fails with
// ErrConcurrentRun when another run already holds it. A lease older than the
// configured ttl is treated as abandoned (the holder died before committing
// a run) and is stolen in the same atomic statement; a ttl of zero disables
// takeover.
func (r *PgxLeaseRepository) AcquireLease(ctx context.Context, businessID string) (*domain.RunLease, error) {
	lease := domain.RunLease{
		Token:      uuid.NewString(),
		BusinessID: businessID,
		AcquiredAt: time.Now().UTC(),
	}
	var expiredBefore time.Time
	if r.ttl > 0 {
		expiredBefore = lease.AcquiredAt.Add(-r.ttl)
	}
	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO run_leases (business_id, token, run_id, acquired_at)
		VALUES ($1, $2, NULL, $3)
		ON CONFLICT (business_id) DO UPDATE
		SET token = EXCLUDED.token, run_id = NULL, acquired_at = EXCLUDED.acquired_at
		WHERE run_leases.acquired_at <= $4;
	`, lease.BusinessID, lease.Token, lease.AcquiredAt, expiredBefore)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to acquire run lease for business "+businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrConcurrentRun
	}
	return &lease, nil
}

// AttachRun links a created run to the lease holding it.
func (r *PgxLeaseRepository) AttachRun(ctx context.Context, token, runID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE run_leases SET run_id = $2 WHERE token = $1;
	`, token, runID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to attach run "+runID+" to lease", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReleaseLease deletes the lease row by token. A token that no longer holds
// the lease deletes nothing, so a stale holder cannot evict a successor.
func (r *PgxLeaseRepository) ReleaseLease(ctx context.Context, token string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM run_leases WHERE token = $1;`, token)
	if err != nil {
		return apperrors.NewAppError(500, "failed to release run lease", err)
	}
	return nil
}

// ReleaseLeaseByRun releases the lease retained across a Pending run.
func (r *PgxLeaseRepository) ReleaseLeaseByRun(ctx context.Context, runID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM run_leases WHERE run_id = $1;`, runID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to release run lease for run "+runID, err)
	}
	return nil
}
