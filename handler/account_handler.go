package handler

import (
	"encoding/json"
	"net/http"

	"bankist/common"
	"bankist/logger"
	"bankist/model"
	"bankist/service"

	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	sessions *service.SessionManager
}

func NewAccountHandler(sessions *service.SessionManager) *AccountHandler {
	return &AccountHandler{sessions: sessions}
}

func writeView(w http.ResponseWriter, view *model.AccountView) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(view)
}

// GetAccount godoc
// @Summary      Show the logged-in account
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.AccountView
// @Failure      401  {object}  common.AppError
// @Router       /api/account [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, _, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}
	view, err := session.View(r.Context())
	if err != nil {
		return fromServiceError(err, "Could not load account")
	}
	writeView(w, view)
	return nil
}

// CreateTransfer godoc
// @Summary      Transfer money to another account
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transfer body model.TransferRequest true "Receiver username and amount"
// @Success      200  {object}  model.AccountView
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Invalid amount, invalid receiver or insufficient funds"
// @Router       /api/transfers [post]
func (h *AccountHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	session, _, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithFields(logrus.Fields{
		"from":   session.Username(),
		"to":     req.To,
		"amount": req.Amount.String(),
	}).Info("Transfer request received")

	view, err := session.Transfer(r.Context(), req.To, req.Amount)
	if err != nil {
		return fromServiceError(err, "Could not process transfer")
	}
	writeView(w, view)
	return nil
}

// RequestLoan godoc
// @Summary      Request a loan
// @Description  Granted when some movement is at least 10% of the requested amount.
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        loan body model.LoanRequest true "Loan amount"
// @Success      200  {object}  model.AccountView
// @Failure      401  {object}  common.AppError
// @Failure      422  {object}  common.AppError "Invalid amount or loan denied"
// @Router       /api/loans [post]
func (h *AccountHandler) RequestLoan(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoanRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	session, _, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}

	view, err := session.RequestLoan(r.Context(), req.Amount)
	if err != nil {
		return fromServiceError(err, "Could not process loan")
	}
	writeView(w, view)
	return nil
}

// CloseAccount godoc
// @Summary      Close the logged-in account
// @Description  Username and PIN must match the logged-in account. Ends the session.
// @Tags         account
// @Accept       json
// @Security     BearerAuth
// @Param        confirmation body model.CloseRequest true "Username and PIN of the current account"
// @Success      204
// @Failure      401  {object}  common.AppError
// @Failure      403  {object}  common.AppError "Username or PIN mismatch"
// @Router       /api/account/close [post]
func (h *AccountHandler) CloseAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CloseRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	session, id, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}

	if err := session.Close(r.Context(), req.Username, req.Pin); err != nil {
		return fromServiceError(err, "Could not close account")
	}
	h.sessions.End(id)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ToggleSort godoc
// @Summary      Toggle movement sorting
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.AccountView
// @Failure      401  {object}  common.AppError
// @Router       /api/account/sort [post]
func (h *AccountHandler) ToggleSort(w http.ResponseWriter, r *http.Request) *common.AppError {
	session, _, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}
	view, err := session.ToggleSort(r.Context())
	if err != nil {
		return fromServiceError(err, "Could not sort movements")
	}
	writeView(w, view)
	return nil
}
