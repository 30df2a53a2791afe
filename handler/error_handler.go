package handler

import (
	"errors"
	"net/http"

	"bankist/common"
	"bankist/service"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// fromServiceError maps a session rejection to its HTTP status. Unknown
// errors become 500 with a generic message.
func fromServiceError(err error, fallback string) *common.AppError {
	reason := service.Reason(err)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrNotLoggedIn):
		return common.NewAppError(http.StatusUnauthorized, err.Error(), err).WithReason(reason)
	case errors.Is(err, service.ErrCloseMismatch):
		return common.NewAppError(http.StatusForbidden, err.Error(), err).WithReason(reason)
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidReceiver),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrLoanDenied):
		return common.NewAppError(http.StatusUnprocessableEntity, err.Error(), err).WithReason(reason)
	default:
		return common.NewAppError(http.StatusInternalServerError, fallback, err)
	}
}
