//go:build unit

package pricechange_test

import (
	"testing"

	"referral-pricing/internal/domain/money"
	"referral-pricing/internal/domain/pricechange"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPercentCalculator(t *testing.T, rate string) *pricechange.DefaultReductionCalculator {
	t.Helper()
	rule, err := pricechange.NewPercentOfContributionRule(decimal.RequireFromString(rate))
	require.NoError(t, err)
	return pricechange.NewDefaultReductionCalculator(rule)
}

func TestDefaultReductionCalculator(t *testing.T) {
	calc := newPercentCalculator(t, "0.20")

	t.Run("20% of contribution", func(t *testing.T) {
		actual, err := calc.Calculate(money.MustParse("100.00"), money.MustParse("50.00"))
		require.NoError(t, err)

		assert.Equal(t, "100.00", actual.OriginalPrice.String())
		assert.Equal(t, "10.00", actual.ReductionAmount.String())
		assert.Equal(t, "90.00", actual.NewPrice.String())
		assert.True(t, actual.ReductionPercentage.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "percent_of_contribution", actual.Metadata["rule"])
		assert.Equal(t, false, actual.Metadata["capped"])
	})

	t.Run("reduction is capped at current price", func(t *testing.T) {
		actual, err := calc.Calculate(money.MustParse("5.00"), money.MustParse("1000.00"))
		require.NoError(t, err)

		assert.Equal(t, "5.00", actual.ReductionAmount.String())
		assert.Equal(t, "0.00", actual.NewPrice.String())
		assert.True(t, actual.ReductionPercentage.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, true, actual.Metadata["capped"])
	})

	t.Run("zero current price", func(t *testing.T) {
		actual, err := calc.Calculate(money.Zero(), money.MustParse("50.00"))
		require.NoError(t, err)

		assert.True(t, actual.NewPrice.IsZero())
		assert.True(t, actual.ReductionAmount.IsZero())
		assert.True(t, actual.ReductionPercentage.IsZero())
	})

	t.Run("rounding happens once at the end", func(t *testing.T) {
		// 0.20 * 33.335 = 6.667 -> 6.67; 99.995 - 6.667 = 93.328 -> 93.33
		actual, err := calc.Calculate(money.MustParse("99.995"), money.MustParse("33.335"))
		require.NoError(t, err)

		assert.Equal(t, "6.67", actual.ReductionAmount.String())
		assert.Equal(t, "93.33", actual.NewPrice.String())
	})

	t.Run("half-cent reduction keeps the price identity", func(t *testing.T) {
		// 0.20 * 12.525 = 2.505 -> 2.51
		actual, err := calc.Calculate(money.MustParse("100.00"), money.MustParse("12.525"))
		require.NoError(t, err)

		assert.Equal(t, "2.51", actual.ReductionAmount.String())
		assert.Equal(t, "97.49", actual.NewPrice.String())
	})

	t.Run("new price plus reduction equals original price", func(t *testing.T) {
		prices := []string{"0.01", "9.99", "99.995", "100.00", "100.005", "12345.67"}
		contributions := []string{"0.025", "0.075", "12.525", "33.335", "49.995", "123.4567"}
		for _, p := range prices {
			for _, c := range contributions {
				actual, err := calc.Calculate(money.MustParse(p), money.MustParse(c))
				require.NoError(t, err)
				if actual.Metadata["capped"] == true {
					continue
				}
				sum := actual.NewPrice.Add(actual.ReductionAmount)
				assert.True(t, sum.Equal(actual.OriginalPrice),
					"price=%s contribution=%s: %s + %s != %s", p, c, actual.NewPrice, actual.ReductionAmount, actual.OriginalPrice)
			}
		}
	})

	t.Run("negative inputs are rejected", func(t *testing.T) {
		cases := []struct {
			name         string
			price        string
			contribution string
		}{
			{name: "negative price", price: "-1.00", contribution: "10.00"},
			{name: "negative contribution", price: "10.00", contribution: "-0.01"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := calc.Calculate(money.MustParse(tc.price), money.MustParse(tc.contribution))
				assert.ErrorIs(t, err, pricechange.ErrInvalidInput)
			})
		}
	})

	t.Run("new price is never negative", func(t *testing.T) {
		prices := []string{"0", "0.01", "1.99", "9.99", "100", "12345.67"}
		contributions := []string{"0", "0.01", "5", "49.99", "500", "1000000"}
		for _, p := range prices {
			for _, c := range contributions {
				actual, err := calc.Calculate(money.MustParse(p), money.MustParse(c))
				require.NoError(t, err)
				assert.False(t, actual.NewPrice.IsNegative(), "price=%s contribution=%s", p, c)
				assert.False(t, actual.ReductionAmount.GreaterThan(actual.OriginalPrice), "price=%s contribution=%s", p, c)
			}
		}
	})
}

func TestFixedAmountRule(t *testing.T) {
	rule, err := pricechange.NewFixedAmountRule(money.MustParse("15.00"))
	require.NoError(t, err)
	calc := pricechange.NewDefaultReductionCalculator(rule)

	actual, err := calc.Calculate(money.MustParse("40.00"), money.MustParse("1.00"))
	require.NoError(t, err)
	assert.Equal(t, "25.00", actual.NewPrice.String())
	assert.Equal(t, "15.00", actual.Metadata["amount"])

	_, err = pricechange.NewFixedAmountRule(money.MustParse("-1"))
	assert.ErrorIs(t, err, pricechange.ErrInvalidInput)
}

func TestNewPercentOfContributionRule(t *testing.T) {
	_, err := pricechange.NewPercentOfContributionRule(decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, pricechange.ErrInvalidInput)

	_, err = pricechange.NewPercentOfContributionRule(decimal.RequireFromString("-0.1"))
	assert.ErrorIs(t, err, pricechange.ErrInvalidInput)
}
