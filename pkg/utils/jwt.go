package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the claims in a register session token.
type SessionClaims struct {
	Register string `json:"register"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates register session tokens. A session is
// created when an operator unlocks the register with the venue PIN.
type JWTManager struct {
	secretKey  []byte
	sessionTTL time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:  []byte(secret),
		sessionTTL: sessionTTL,
	}
}

// GenerateSessionToken issues a token for an unlocked register.
func (m *JWTManager) GenerateSessionToken(register string) (string, error) {
	claims := &SessionClaims{
		Register: register,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "barkassa-api",
			Subject:   register,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateSessionToken validates a session token and returns the claims.
func (m *JWTManager) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
