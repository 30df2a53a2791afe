package router

import (
	"net/http"

	"bankist/handler"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter mounts the public and session-protected routes. protect resolves
// the bearer token to a live session.
func NewRouter(
	healthHandler *handler.HealthHandler,
	sessionHandler *handler.SessionHandler,
	accountHandler *handler.AccountHandler,
	protect func(http.Handler) http.Handler,
	metricsHandler http.Handler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("POST /login", handler.ErrorHandlingMiddleware(sessionHandler.Login))
	mux.Handle("GET /metrics", metricsHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/logout", protect(handler.ErrorHandlingMiddleware(sessionHandler.Logout)))
	mux.Handle("GET /api/account", protect(handler.ErrorHandlingMiddleware(accountHandler.GetAccount)))
	mux.Handle("POST /api/transfers", protect(handler.ErrorHandlingMiddleware(accountHandler.CreateTransfer)))
	mux.Handle("POST /api/loans", protect(handler.ErrorHandlingMiddleware(accountHandler.RequestLoan)))
	mux.Handle("POST /api/account/close", protect(handler.ErrorHandlingMiddleware(accountHandler.CloseAccount)))
	mux.Handle("POST /api/account/sort", protect(handler.ErrorHandlingMiddleware(accountHandler.ToggleSort)))

	return mux
}
