package service

import (
	"errors"
	"fmt"
	"time"

	"bankist/logger"
	"bankist/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrEmptySecret  = errors.New("token signing secret is empty")
)

// AuthService hashes PINs and issues the bearer tokens that identify a session.
type AuthService struct {
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{secret: []byte(secret), tokenTTL: tokenTTL, bcryptCost: bcryptCost}
}

func pinString(pin int) string {
	return fmt.Sprintf("%04d", pin)
}

func (s *AuthService) HashPIN(pin int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pinString(pin)), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash PIN")
		return "", err
	}
	return string(bytes), nil
}

// CheckPIN reports whether pin is exactly the PIN behind hash.
func (s *AuthService) CheckPIN(pin int, hash string) bool {
	if pin < 0 || pin > 9999 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pinString(pin))) == nil
}

// GenerateToken signs an HS256 token for sessionID, valid for the configured TTL.
func (s *AuthService) GenerateToken(username, sessionID string) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrEmptySecret
	}
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := &model.SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("username", username).Error("Failed to sign JWT")
		return "", time.Time{}, fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, expiresAt, nil
}

func (s *AuthService) ParseToken(tokenString string) (*model.SessionClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrInvalidToken
	}
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
