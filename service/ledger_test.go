package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amounts(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize_WorkedExample(t *testing.T) {
	s := Summarize(amounts(200, 450, -400, 3000), dec("1.2"))

	assert.True(t, s.Income.Equal(dec("3650")), "income=%s", s.Income)
	assert.True(t, s.Outgo.Equal(dec("400")), "outgo=%s", s.Outgo)
	assert.True(t, s.Balance.Equal(dec("3250")), "balance=%s", s.Balance)
	assert.True(t, s.Interest.Equal(dec("43.8")), "interest=%s", s.Interest)
}

func TestInterest_SkipsSmallCredits(t *testing.T) {
	// 70 * 1.2% = 0.84 is below one unit and earns nothing.
	movements := amounts(200, 450, -400, 3000, -650, -130, 70, 1300)
	assert.True(t, Interest(movements, dec("1.2")).Equal(dec("59.4")))

	// Each credit is below one unit even though they add up to more.
	assert.True(t, Interest(amounts(70, 80), dec("1.2")).IsZero())

	// Exactly one unit is paid.
	assert.True(t, Interest(amounts(100), dec("1")).Equal(dec("1")))
}

func TestLedger_Empty(t *testing.T) {
	s := Summarize(nil, dec("1.5"))
	assert.True(t, s.Balance.IsZero())
	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Outgo.IsZero())
	assert.True(t, s.Interest.IsZero())
}

func TestLedger_OnlyWithdrawals(t *testing.T) {
	m := amounts(-150, -790.5)
	assert.True(t, Balance(m).Equal(dec("-940.5")))
	assert.True(t, Income(m).IsZero())
	assert.True(t, Outgo(m).Equal(dec("940.5")))
	assert.True(t, Interest(m, dec("10")).IsZero())
}

func TestBalance_EqualsIncomeMinusOutgo(t *testing.T) {
	for _, m := range [][]decimal.Decimal{
		amounts(5000, 3400, -150, -790, -3210, -1000, 8500, -30),
		amounts(200, -200, 340, -300, -20, 50, 400, -460),
		amounts(430, 1000, 700, 50, 90),
	} {
		assert.True(t, Balance(m).Equal(Income(m).Sub(Outgo(m))))
	}
}
