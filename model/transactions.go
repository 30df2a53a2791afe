package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is one signed entry on an account: deposits are positive,
// withdrawals negative. Amount and Date travel together.
type Movement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

func (m Movement) IsDeposit() bool {
	return m.Amount.IsPositive()
}
