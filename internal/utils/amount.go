package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// ParseAmount parses a textual amount, accepting either "," or "." as the
// decimal separator. An empty string parses as zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot parse %q", apperrors.ErrInvalidAmount, s)
	}
	return d, nil
}

// ParseDate parses an ISO calendar date. Malformed input is rejected, never defaulted.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return d, nil
}

// ParseOptionalDate parses s when non-empty and returns the zero time otherwise.
func ParseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDate renders a calendar date.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
