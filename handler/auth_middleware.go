package handler

import (
	"context"
	"net/http"
	"strings"

	"bankist/common"
	"bankist/service"
)

type contextKey string

const (
	SessionKey   contextKey = "session"
	SessionIDKey contextKey = "sessionID"
)

// AuthMiddleware resolves the bearer token to a live session and stores it
// in the request context.
func AuthMiddleware(auth *service.AuthService, sessions *service.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := auth.ParseToken(headerParts[1])
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err).Send(w)
				return
			}

			session, ok := sessions.Get(claims.ID)
			if !ok || !session.LoggedIn() {
				sessions.End(claims.ID)
				common.NewAppError(http.StatusUnauthorized, "Session has ended", nil).
					WithReason(service.Reason(service.ErrNotLoggedIn)).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			ctx = context.WithValue(ctx, SessionIDKey, claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))

			// the account may have been closed by another session
			if !session.LoggedIn() {
				sessions.End(claims.ID)
			}
		})
	}
}

func sessionFrom(r *http.Request) (*service.Session, string, *common.AppError) {
	session, ok := r.Context().Value(SessionKey).(*service.Session)
	if !ok {
		return nil, "", common.NewAppError(http.StatusUnauthorized, "No session in request", nil)
	}
	id, _ := r.Context().Value(SessionIDKey).(string)
	return session, id, nil
}
