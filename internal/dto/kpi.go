package dto

import (
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
)

// RecalculateKPIRequest is the optional body of a KPI recalculation.
type RecalculateKPIRequest struct {
	Notes *string `json:"notes"`
}

// KPIResponse defines the data returned for a monthly KPI snapshot.
type KPIResponse struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	BurnRate         AmountResponse  `json:"burnRate"`
	RunwayMonths     *AmountResponse `json:"runwayMonths"`
	RecurringRevenue AmountResponse  `json:"recurringRevenue"`
	CalculatedBy     string          `json:"calculatedBy"`
	CalculatedAt     time.Time       `json:"calculatedAt"`
	Notes            *string         `json:"notes,omitempty"`
}

func ToKPIResponse(k *domain.MonthlyKPI) KPIResponse {
	return KPIResponse{
		Year:             k.Year,
		Month:            k.Month,
		BurnRate:         amount(k.BurnRate),
		RunwayMonths:     nullableAmount(k.RunwayMonths),
		RecurringRevenue: amount(k.RecurringRevenue),
		CalculatedBy:     k.CalculatedBy,
		CalculatedAt:     k.CalculatedAt,
		Notes:            k.Notes,
	}
}

// ListKPIsResponse wraps stored KPI snapshots.
type ListKPIsResponse struct {
	KPIs []KPIResponse `json:"kpis"`
}

func ToListKPIsResponse(kpis []domain.MonthlyKPI) ListKPIsResponse {
	out := make([]KPIResponse, len(kpis))
	for i := range kpis {
		out[i] = ToKPIResponse(&kpis[i])
	}
	return ListKPIsResponse{KPIs: out}
}
