package mapping

import (
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
)

// ToModelKPI converts a domain MonthlyKPI to a model MonthlyKPI
func ToModelKPI(d domain.MonthlyKPI) models.MonthlyKPI {
	return models.MonthlyKPI(d)
}

// ToDomainKPI converts a model MonthlyKPI to a domain MonthlyKPI
func ToDomainKPI(m models.MonthlyKPI) domain.MonthlyKPI {
	return domain.MonthlyKPI(m)
}
