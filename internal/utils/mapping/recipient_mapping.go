package mapping

import (
	"github.com/streampay-labs/payrolld/internal/core/domain"
	"github.com/streampay-labs/payrolld/internal/models"
)

// ToModelRecipient converts a domain Recipient to its model form.
func ToModelRecipient(d domain.Recipient) models.Recipient {
	return models.Recipient{
		RecipientID:     d.RecipientID,
		BusinessID:      d.BusinessID,
		Kind:            models.RecipientKind(d.Kind),
		Name:            d.Name,
		Email:           d.Email,
		Role:            d.Role,
		WalletReference: d.WalletReference,
		Amount:          d.Amount,
		Status:          models.RecipientStatus(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecipient converts a model Recipient to its domain form.
func ToDomainRecipient(m models.Recipient) domain.Recipient {
	return domain.Recipient{
		RecipientID:     m.RecipientID,
		BusinessID:      m.BusinessID,
		Kind:            domain.RecipientKind(m.Kind),
		Name:            m.Name,
		Email:           m.Email,
		Role:            m.Role,
		WalletReference: m.WalletReference,
		Amount:          m.Amount,
		Status:          domain.RecipientStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
