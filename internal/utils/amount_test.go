package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/apperrors"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("1250,50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1250.50").Equal(d))

	d, err = ParseAmount(" 99.9 ")
	require.NoError(t, err)
	assert.Equal(t, "99.90", FormatAmount(d))

	d, err = ParseAmount("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseAmount("12a")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-01-15", FormatDate(d))

	_, err = ParseDate("15/01/2025")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	d, err = ParseOptionalDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}
