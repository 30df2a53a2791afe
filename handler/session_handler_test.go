package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankist/common"
	"bankist/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) login(t *testing.T, username string, pin int) string {
	t.Helper()
	body, _ := json.Marshal(model.LoginRequest{Username: username, Pin: pin})
	rr := s.do(t, http.MethodPost, "/login", "", string(body))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp model.LoginResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Token
}

func decodeAppError(t *testing.T, rr *httptest.ResponseRecorder) common.AppError {
	t.Helper()
	var appErr common.AppError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&appErr))
	return appErr
}

func TestSessionHandler_Login(t *testing.T) {
	s := newTestServer(t)

	t.Run("Success", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/login", "", `{"username":"jd","pin":2222}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp model.LoginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
		assert.True(t, resp.ExpiresAt.After(testNow))
		require.NotNil(t, resp.View)
		assert.Equal(t, "jd", resp.View.Username)
		assert.Equal(t, "Welcome back, Jessica", resp.View.Welcome)
		assert.Len(t, resp.View.Movements, 8)
		assert.Equal(t, 1, s.sessions.Len())
	})

	t.Run("Wrong PIN", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/login", "", `{"username":"jd","pin":1111}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid_credentials", decodeAppError(t, rr).Reason)
	})

	t.Run("Unknown user", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/login", "", `{"username":"nobody","pin":1111}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/login", "", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Missing username", func(t *testing.T) {
		rr := s.do(t, http.MethodPost, "/login", "", `{"pin":1111}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "js", 1111)

	rr := s.do(t, http.MethodPost, "/api/logout", token, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 0, s.sessions.Len())

	rr = s.do(t, http.MethodGet, "/api/account", token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "not_logged_in", decodeAppError(t, rr).Reason)
}

func TestAuthMiddleware(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{"No header", ""},
		{"Wrong scheme", "Basic abc"},
		{"Garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			s.mux.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}

	t.Run("Valid token for unknown session", func(t *testing.T) {
		token, _, err := s.auth.GenerateToken("js", "8d0f5c1e-0000-4000-8000-000000000000")
		require.NoError(t, err)
		rr := s.do(t, http.MethodGet, "/api/account", token, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthMiddleware_EndsSessionOfClosedAccount(t *testing.T) {
	s := newTestServer(t)
	for i := 0; i < 3; i++ {
		s.login(t, "js", 1111)
	}
	watcher := s.login(t, "jd", 2222)
	closer := s.login(t, "jd", 2222)
	require.Equal(t, 5, s.sessions.Len())

	rr := s.do(t, http.MethodPost, "/api/account/close", closer, `{"username":"jd","pin":2222}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/account", watcher, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "not_logged_in", decodeAppError(t, rr).Reason)
	assert.Equal(t, 3, s.sessions.Len())

	_, ok := s.sessions.Get(tokenSessionID(t, s, watcher))
	assert.False(t, ok)
}

func TestAuthMiddleware_ExpiredSession(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "js", 1111)
	require.Equal(t, 1, s.sessions.Len())

	s.now = s.now.Add(2 * time.Hour)
	rr := s.do(t, http.MethodGet, "/api/account", token, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, s.sessions.Len())
}

func tokenSessionID(t *testing.T, s *testServer, token string) string {
	t.Helper()
	claims, err := s.auth.ParseToken(token)
	require.NoError(t, err)
	return claims.ID
}
