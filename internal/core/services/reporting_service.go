package services

import (
	"context"
	"time"

	"github.com/streampay-labs/payrolld/internal/core/domain"
	portsrepo "github.com/streampay-labs/payrolld/internal/core/ports/repositories"
	portssvc "github.com/streampay-labs/payrolld/internal/core/ports/services"
	"github.com/streampay-labs/payrolld/internal/utils/reporting"
)

const reportPageSize = 500

// reportingService folds payment history into summary metrics.
type reportingService struct {
	BaseService
	paymentRepo portsrepo.PaymentRecordReader
}

// NewReportingService creates a reporting service.
func NewReportingService(paymentRepo portsrepo.PaymentRecordReader) portssvc.ReportingSvcFacade {
	return &reportingService{paymentRepo: paymentRepo}
}

// Summary walks the business's payment history and aggregates it in a single
// pass. Zero bounds mean an open range.
func (s *reportingService) Summary(ctx context.Context, businessID string, from, to time.Time) (*domain.ReportSummary, error) {
	history := make([]domain.PaymentRecord, 0, reportPageSize)
	var nextToken *string
	for {
		page, token, err := s.paymentRepo.ListPaymentsByBusiness(ctx, businessID, reportPageSize, nextToken, portsrepo.PaymentListFilter{})
		if err != nil {
			s.LogError(ctx, err, "failed to read payment history for summary")
			return nil, err
		}
		history = append(history, page...)
		if token == nil {
			break
		}
		nextToken = token
	}

	summary := reporting.Summarize(history, from, to)
	return &summary, nil
}
