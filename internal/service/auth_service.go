package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and verifies admin tokens
type AuthService struct {
	secret    []byte
	accessKey string
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret, accessKey string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		secret:    []byte(secret),
		accessKey: accessKey,
		tokenTTL:  tokenTTL,
	}
}

// Login exchanges the admin access key for a signed token
func (s *AuthService) Login(accessKey string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(accessKey), []byte(s.accessKey)) != 1 {
		return "", invalidf("invalid access key")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks a bearer token and returns its subject
func (s *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

// TokenTTL exposes the configured token lifetime
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
