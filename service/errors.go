package service

import "errors"

// Rejections. A rejected action leaves the store and the session unchanged.
var (
	ErrNotLoggedIn        = errors.New("no account is logged in")
	ErrInvalidCredentials = errors.New("invalid username or pin")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidReceiver    = errors.New("receiver account not found or same as sender")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrLoanDenied         = errors.New("loan requires a movement of at least 10% of the amount")
	ErrCloseMismatch      = errors.New("username and pin do not match the current account")
)

// Reason is a stable label for err, used for metrics and logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, ErrNotLoggedIn):
		return "not_logged_in"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidReceiver):
		return "invalid_receiver"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrLoanDenied):
		return "loan_denied"
	case errors.Is(err, ErrCloseMismatch):
		return "close_mismatch"
	default:
		return "error"
	}
}
