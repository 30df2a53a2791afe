package common

import (
	"encoding/json"
	"net/http"

	"bankist/logger"

	"github.com/sirupsen/logrus"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Reason is a machine-readable rejection label, empty for plain errors.
	Reason string `json:"reason,omitempty"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) WithReason(reason string) *AppError {
	e.Reason = reason
	return e
}

func (e *AppError) Send(w http.ResponseWriter) {
	if e.Err != nil && e.Code >= http.StatusInternalServerError {
		logger.Log.WithFields(logrus.Fields{
			"status_code":    e.Code,
			"internal_error": e.Err.Error(),
		}).Error(e.Message)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Code)
	json.NewEncoder(w).Encode(e)
}
