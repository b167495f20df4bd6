package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency_USD(t *testing.T) {
	got, err := formatCurrency(decimal.NewFromInt(20), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$20.00", got)
}

func TestFormatCurrency_ThousandsSeparator(t *testing.T) {
	got, err := formatCurrency(decimal.NewFromInt(1243), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$1,243.00", got)
}

func TestFormatCurrency_RoundsToMinorUnit(t *testing.T) {
	got, err := formatCurrency(decimal.RequireFromString("10.005"), "USD")
	require.NoError(t, err)
	assert.Equal(t, "$10.01", got)
}

func TestFormatCurrency_ZeroMinorUnitCurrency(t *testing.T) {
	// JPY has no minor unit.
	got, err := formatCurrency(decimal.RequireFromString("1500.4"), "JPY")
	require.NoError(t, err)
	assert.NotContains(t, got, ".")
	assert.Contains(t, got, "1,500")
}

func TestFormatCurrency_UnknownCode(t *testing.T) {
	_, err := formatCurrency(decimal.NewFromInt(20), "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE")
}
