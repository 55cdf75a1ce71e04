package accounting

import (
	"fmt"
	"slices"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/techcarewavehealth-wq/carewaveerp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces is the precision every stored amount must fit.
const MaxDecimalPlaces = 2

// MaxAmount is the exclusive upper bound on a single amount, the largest value
// a NUMERIC(18,2) column holds plus one cent.
var MaxAmount = decimal.New(1, 16)

// CreditNormal reports whether an account type carries credit-positive balances.
// Asset and expense accounts are debit-positive; the rest are credit-positive.
func CreditNormal(accountType domain.AccountType) bool {
	switch accountType {
	case domain.Liability, domain.Equity, domain.Income:
		return true
	}
	return false
}

// NaturalAmount returns debit-credit for debit-normal types and credit-debit otherwise.
func NaturalAmount(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if CreditNormal(accountType) {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// CheckAmount rejects negative amounts, amounts of MaxAmount or more and
// amounts finer than a cent.
func CheckAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidAmount, amount.String())
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return fmt.Errorf("%w: %s exceeds the largest storable amount", apperrors.ErrInvalidAmount, amount.String())
	}
	if !amount.Round(MaxDecimalPlaces).Equal(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrInvalidAmount, amount.String(), MaxDecimalPlaces)
	}
	return nil
}

// SumSides totals the debit and credit columns of a set of lines.
func SumSides(lines []domain.LineInput) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// CheckBalanced returns apperrors.ErrUnbalancedEntry unless debits equal credits exactly.
func CheckBalanced(lines []domain.LineInput) error {
	debits, credits := SumSides(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits (%s) != credits (%s)", apperrors.ErrUnbalancedEntry, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

// RecentMonths picks up to n of the latest months that have an amount, oldest first.
func RecentMonths(byMonth map[domain.MonthKey]decimal.Decimal, n int) []domain.MonthlyAmount {
	keys := make([]domain.MonthKey, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b domain.MonthKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	out := make([]domain.MonthlyAmount, len(keys))
	for i, k := range keys {
		out[i] = domain.MonthlyAmount{MonthKey: k, Amount: byMonth[k]}
	}
	return out
}

// Average returns the mean of the amounts, or zero for an empty slice.
func Average(amounts []domain.MonthlyAmount) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, m := range amounts {
		total = total.Add(m.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(amounts))))
}

// Runway divides cash by burn. It is undefined unless burn is positive.
func Runway(cash, burn decimal.Decimal) decimal.NullDecimal {
	if !burn.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(cash.Div(burn))
}
