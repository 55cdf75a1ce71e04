package mapping

import (
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
)

// ToModelInvestor converts a domain Investor to a model Investor
func ToModelInvestor(d domain.Investor) models.Investor {
	return models.Investor{
		InvestorID:       d.InvestorID,
		Name:             d.Name,
		OwnershipPercent: d.OwnershipPercent,
		InvestedAmount:   d.InvestedAmount,
		Notes:            d.Notes,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestor converts a model Investor to a domain Investor
func ToDomainInvestor(m models.Investor) domain.Investor {
	return domain.Investor{
		InvestorID:       m.InvestorID,
		Name:             m.Name,
		OwnershipPercent: m.OwnershipPercent,
		InvestedAmount:   m.InvestedAmount,
		Notes:            m.Notes,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
