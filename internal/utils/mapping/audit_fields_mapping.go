package mapping

import (
	"github.com/SscSPs/pos_billing_app/internal/core/domain"
	"github.com/SscSPs/pos_billing_app/internal/models"
)

// ToModelAuditFields converts domain AuditFields to model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainAuditFields converts model AuditFields to domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}
