package mapping

import (
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/models"
)

// ToModelPayrollRun converts a domain PayrollRun to its model form.
func ToModelPayrollRun(d domain.PayrollRun) models.PayrollRun {
	recipients := make([]models.RecipientSnapshot, len(d.Recipients))
	for i, s := range d.Recipients {
		recipients[i] = models.RecipientSnapshot{
			RecipientID:     s.RecipientID,
			Name:            s.Name,
			WalletReference: s.WalletReference,
			Amount:          s.Amount,
		}
	}
	return models.PayrollRun{
		RunID:               d.RunID,
		BusinessID:          d.BusinessID,
		TotalAmount:         d.TotalAmount,
		CurrencyCode:        d.CurrencyCode,
		Status:              models.RunStatus(d.Status),
		SettlementReference: d.SettlementReference,
		Period:              d.Period,
		Recipients:          recipients,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayrollRun converts a model PayrollRun to its domain form.
func ToDomainPayrollRun(m models.PayrollRun) domain.PayrollRun {
	recipients := make([]domain.RecipientSnapshot, len(m.Recipients))
	for i, s := range m.Recipients {
		recipients[i] = domain.RecipientSnapshot{
			RecipientID:     s.RecipientID,
			Name:            s.Name,
			WalletReference: s.WalletReference,
			Amount:          s.Amount,
		}
	}
	return domain.PayrollRun{
		RunID:               m.RunID,
		BusinessID:          m.BusinessID,
		TotalAmount:         m.TotalAmount,
		CurrencyCode:        m.CurrencyCode,
		Status:              domain.RunStatus(m.Status),
		SettlementReference: m.SettlementReference,
		Period:              m.Period,
		Recipients:          recipients,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentRecord converts a domain PaymentRecord to its model form.
func ToModelPaymentRecord(d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:           d.PaymentID,
		BusinessID:          d.BusinessID,
		RunID:               d.RunID,
		RecipientID:         d.RecipientID,
		RecipientName:       d.RecipientName,
		Amount:              d.Amount,
		Timestamp:           d.Timestamp,
		Category:            string(d.Category),
		Status:              models.PaymentStatus(d.Status),
		SettlementReference: d.SettlementReference,
	}
}

// ToDomainPaymentRecord converts a model PaymentRecord to its domain form.
func ToDomainPaymentRecord(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:           m.PaymentID,
		BusinessID:          m.BusinessID,
		RunID:               m.RunID,
		RecipientID:         m.RecipientID,
		RecipientName:       m.RecipientName,
		Amount:              m.Amount,
		Timestamp:           m.Timestamp,
		Category:            domain.PaymentCategory(m.Category),
		Status:              domain.PaymentStatus(m.Status),
		SettlementReference: m.SettlementReference,
	}
}
