package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReconcilesExact(t *testing.T) {
	assert.True(t, Reconciles(d("22.98"), d("2.30"), d("25.28")))
}

func TestReconcilesWithinOneCent(t *testing.T) {
	assert.True(t, Reconciles(d("22.98"), d("2.30"), d("25.29")))
	assert.True(t, Reconciles(d("22.98"), d("2.30"), d("25.27")))
}

func TestReconcilesRejectsLargerDrift(t *testing.T) {
	assert.False(t, Reconciles(d("22.98"), d("2.30"), d("25.00")))
	assert.False(t, Reconciles(d("22.98"), d("2.30"), d("25.30")))
}

func TestRound(t *testing.T) {
	assert.True(t, d("10.01").Equal(Round(d("10.005"))))
	assert.True(t, d("10.00").Equal(Round(d("10.004"))))
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, IsNegative(d("-0.01")))
	assert.False(t, IsNegative(decimal.Zero))

	assert.True(t, IsPositive(d("0.01")))
	assert.False(t, IsPositive(decimal.Zero))
}
