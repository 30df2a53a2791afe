package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims ties a bearer token to a server-side session. The session id
// is carried in the registered "jti" claim.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
