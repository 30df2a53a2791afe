package service

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// minInterestCredit is the smallest per-deposit interest that is paid.
	minInterestCredit = decimal.NewFromInt(1)
)

// Summary is the ledger state of one account, recomputed from scratch.
type Summary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Outgo    decimal.Decimal
	Interest decimal.Decimal
}

func Balance(movements []decimal.Decimal) decimal.Decimal {
	return decimal.Sum(decimal.Zero, movements...)
}

// Income is the sum of all deposits.
func Income(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// Outgo is the absolute value of the sum of all withdrawals.
func Outgo(movements []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total.Abs()
}

// Interest pays rate percent on each deposit, skipping deposits whose
// individual credit is below one unit.
func Interest(movements []decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.IsPositive() {
			continue
		}
		credit := m.Mul(rate).Div(hundred)
		if credit.LessThan(minInterestCredit) {
			continue
		}
		total = total.Add(credit)
	}
	return total
}

func Summarize(movements []decimal.Decimal, rate decimal.Decimal) Summary {
	return Summary{
		Balance:  Balance(movements),
		Income:   Income(movements),
		Outgo:    Outgo(movements),
		Interest: Interest(movements, rate),
	}
}
