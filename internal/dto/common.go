package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/utils"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PeriodParams bounds a report by inclusive ISO dates. Empty bounds are open.
type PeriodParams struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// ToRange parses the bounds into a domain.DateRange.
func (p PeriodParams) ToRange() (domain.DateRange, error) {
	from, err := utils.ParseOptionalDate(p.From)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := utils.ParseOptionalDate(p.To)
	if err != nil {
		return domain.DateRange{}, err
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return domain.DateRange{}, fmt.Errorf("%w: from %s is after to %s", apperrors.ErrValidation, p.From, p.To)
	}
	return domain.DateRange{From: from, To: to}, nil
}

// AmountResponse is a monetary value rendered with two decimals.
type AmountResponse = string

func amount(d decimal.Decimal) AmountResponse {
	return utils.FormatAmount(d)
}

func nullableAmount(d decimal.NullDecimal) *AmountResponse {
	if !d.Valid {
		return nil
	}
	s := utils.FormatAmount(d.Decimal)
	return &s
}

// MonthAmountResponse is a monthly aggregate.
type MonthAmountResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Amount AmountResponse `json:"amount"`
}

func toMonthAmounts(ms []domain.MonthlyAmount) []MonthAmountResponse {
	out := make([]MonthAmountResponse, len(ms))
	for i, m := range ms {
		out[i] = MonthAmountResponse{Year: m.Year, Month: m.Month, Amount: amount(m.Amount)}
	}
	return out
}
