package handler

import (
	"encoding/json"
	"net/http"

	"bankist/common"
	"bankist/logger"
	"bankist/model"
	"bankist/service"
)

type SessionHandler struct {
	auth     *service.AuthService
	sessions *service.SessionManager
}

func NewSessionHandler(auth *service.AuthService, sessions *service.SessionManager) *SessionHandler {
	return &SessionHandler{auth: auth, sessions: sessions}
}

// Login godoc
// @Summary      Log in to an account
// @Description  Opens a session for the account whose username and PIN match and returns its view.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Username and PIN"
// @Success      200  {object}  model.LoginResponse
// @Failure      400  {object}  common.AppError "Invalid request body"
// @Failure      401  {object}  common.AppError "Invalid username or PIN"
// @Router       /login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	id, view, err := h.sessions.Login(r.Context(), req.Username, req.Pin)
	if err != nil {
		return fromServiceError(err, "Could not log in")
	}

	token, expiresAt, err := h.auth.GenerateToken(view.Username, id)
	if err != nil {
		h.sessions.End(id)
		return common.NewAppError(http.StatusInternalServerError, "Could not issue token", err)
	}

	logger.Log.WithField("username", view.Username).Info("Login succeeded")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.LoginResponse{Token: token, ExpiresAt: expiresAt, View: view})
	return nil
}

// Logout godoc
// @Summary      Log out
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  common.AppError
// @Router       /api/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) *common.AppError {
	_, id, appErr := sessionFrom(r)
	if appErr != nil {
		return appErr
	}
	h.sessions.End(id)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
