package model

import "github.com/shopspring/decimal"

// LoginRequest defines the payload for opening a session.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Pin      int    `json:"pin" validate:"min=0,max=9999"`
}

// TransferRequest moves Amount from the session account to To.
type TransferRequest struct {
	To     string          `json:"to" validate:"required,max=32"`
	Amount decimal.Decimal `json:"amount"`
}

// LoanRequest asks the bank to credit Amount to the session account.
type LoanRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CloseRequest confirms closing the session account. Both fields must match
// the logged-in account.
type CloseRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Pin      int    `json:"pin" validate:"min=0,max=9999"`
}
