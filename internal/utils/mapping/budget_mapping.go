package mapping

import (
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:      d.BudgetID,
		Name:          d.Name,
		Year:          d.Year,
		Month:         d.Month,
		ExpenseTarget: d.ExpenseTarget,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:      m.BudgetID,
		Name:          m.Name,
		Year:          m.Year,
		Month:         m.Month,
		ExpenseTarget: m.ExpenseTarget,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
