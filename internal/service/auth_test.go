package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedidolabs/order-api/internal/config"
	"github.com/pedidolabs/order-api/internal/constants"
	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/request"
)

func authConfig(t *testing.T) config.Application {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed hashing password with error: %s", err)
	}
	return config.Application{
		SecretKey:    "test-secret",
		Username:     "admin",
		PasswordHash: string(hash),
	}
}

func TestLogin(t *testing.T) {
	c := context.Background()
	cfg := authConfig(t)
	authService := NewAuthService(cfg)

	tests := []struct {
		name        string
		param       request.Login
		expectedErr error
	}{
		{
			name:        "given valid credentials should return token",
			param:       request.Login{Username: "admin", Password: "admin123"},
			expectedErr: nil,
		},
		{
			name:        "given unknown username should return invalid credentials",
			param:       request.Login{Username: "root", Password: "admin123"},
			expectedErr: inErrors.ErrInvalidCredentials,
		},
		{
			name:        "given wrong password should return invalid credentials",
			param:       request.Login{Username: "admin", Password: "admin124"},
			expectedErr: inErrors.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := authService.Login(c, tt.param)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestVerifyToken(t *testing.T) {
	c := context.Background()
	cfg := authConfig(t)
	authService := NewAuthService(cfg)

	token, err := authService.Login(c, request.Login{Username: "admin", Password: "admin123"})
	assert.NoError(t, err)

	jwtToken, err := VerifyToken(c, cfg, token)
	assert.NoError(t, err)
	subject, err := jwtToken.Claims.GetSubject()
	assert.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestVerifyTokenInvalid(t *testing.T) {
	c := context.Background()
	cfg := authConfig(t)

	signedWith := func(secret string, expiresAt time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{constants.AudienceOrderApi},
			Issuer:    constants.AppOrderApi,
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		})
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("failed signing token with error: %s", err)
		}
		return signed
	}

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "given garbage token should return invalid token",
			token: "not-a-token",
		},
		{
			name:  "given expired token should return invalid token",
			token: signedWith(cfg.SecretKey, time.Now().Add(-time.Hour)),
		},
		{
			name:  "given token signed with another secret should return invalid token",
			token: signedWith("another-secret", time.Now().Add(time.Hour)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyToken(c, cfg, tt.token)
			assert.ErrorIs(t, err, inErrors.ErrTokenInvalid)
		})
	}
}
