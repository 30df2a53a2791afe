package repository

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
