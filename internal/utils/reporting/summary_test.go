package reporting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/utils/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(amount int64, category domain.PaymentCategory, status domain.PaymentStatus, ts time.Time) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID: ts.Format(time.RFC3339Nano),
		Amount:    decimal.NewFromInt(amount),
		Category:  category,
		Status:    status,
		Timestamp: ts,
	}
}

func sampleHistory() []domain.PaymentRecord {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	return []domain.PaymentRecord{
		record(1000, domain.CategoryDeposit, domain.PaymentSuccess, base),
		record(200, domain.CategoryPayroll, domain.PaymentSuccess, base.AddDate(0, 0, 1)),
		record(300, domain.CategoryPayroll, domain.PaymentSuccess, base.AddDate(0, 0, 2)),
		record(150, domain.CategoryContractorPayment, domain.PaymentFailed, base.AddDate(0, 0, 3)),
		record(50, domain.CategoryWithdrawal, domain.PaymentPending, base.AddDate(0, 0, 4)),
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := reporting.Summarize(nil, time.Time{}, time.Time{})

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.TotalAmount.IsZero())
	assert.True(t, summary.Average.IsZero())
	assert.True(t, summary.Net.IsZero())
}

func TestSummarize_Metrics(t *testing.T) {
	summary := reporting.Summarize(sampleHistory(), time.Time{}, time.Time{})

	assert.Equal(t, 5, summary.Count)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(1700)))
	assert.True(t, summary.TotalDeposits.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.TotalWithdrawals.Equal(decimal.NewFromInt(700)))
	assert.True(t, summary.TotalPayroll.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, 1, summary.DepositCount)
	assert.Equal(t, 4, summary.WithdrawalCount)
	assert.Equal(t, 3, summary.PayrollCount)
	assert.Equal(t, 3, summary.SuccessCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.True(t, summary.SuccessAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, summary.PendingAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.Average.Equal(decimal.NewFromInt(340)))
	assert.Equal(t, time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC), summary.PeriodStart)
	assert.Equal(t, time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC), summary.PeriodEnd)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	history := sampleHistory()
	baseline := reporting.Summarize(history, time.Time{}, time.Time{})

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.PaymentRecord, len(history))
		copy(shuffled, history)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, baseline, reporting.Summarize(shuffled, time.Time{}, time.Time{}))
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	history := sampleHistory()
	snapshot := make([]domain.PaymentRecord, len(history))
	copy(snapshot, history)

	reporting.Summarize(history, time.Time{}, time.Time{})

	require.Equal(t, snapshot, history)
}

func TestSummarize_RangeFilter(t *testing.T) {
	history := sampleHistory()
	from := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 3, 23, 59, 59, 0, time.UTC)

	summary := reporting.Summarize(history, from, to)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 2, summary.PayrollCount)
}
