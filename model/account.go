package model

import "github.com/shopspring/decimal"

// Account is a Bankist account. Balance is never stored; it is derived from
// Movements whenever it is needed.
type Account struct {
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PinHash      string          `json:"-"`
	Movements    []Movement      `json:"movements"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
}

// Amounts returns the signed movement amounts in insertion order.
func (a *Account) Amounts() []decimal.Decimal {
	out := make([]decimal.Decimal, len(a.Movements))
	for i, m := range a.Movements {
		out[i] = m.Amount
	}
	return out
}

// Clone returns a deep copy so callers cannot alias store internals.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]Movement, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return &cp
}
