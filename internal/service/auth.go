package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedidolabs/order-api/internal/config"
	"github.com/pedidolabs/order-api/internal/constants"
	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/log"
	"github.com/pedidolabs/order-api/internal/otel"
	"github.com/pedidolabs/order-api/internal/request"
)

type AuthService struct {
	config config.Application
}

func NewAuthService(config config.Application) *AuthService {
	return &AuthService{config: config}
}

func (s *AuthService) Login(c context.Context, param request.Login) (string, error) {
	c, span := otel.Tracer.Start(c, "AuthService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AuthService Login").
		Str(log.KeyUsername, param.Username).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "verifying username").Logger()
	logger.Info().Msg("verifying username")
	if param.Username != s.config.Username {
		err := fmt.Errorf("failed verifying username with error=%w", inErrors.ErrInvalidCredentials)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", inErrors.ErrInvalidCredentials
	}
	logger.Info().Msg("verified username")

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Info().Msg("verifying hashed password with password")
	err := bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(param.Password))
	if err != nil {
		err = fmt.Errorf("failed verifying password with error=%w", inErrors.ErrInvalidCredentials)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", inErrors.ErrInvalidCredentials
	}
	logger.Info().Msg("verified hashed password with password")

	logger = logger.With().Str(log.KeyProcess, "issuing token").Logger()
	logger.Info().Msg("issuing token")
	c = logger.WithContext(c)
	token, err := s.IssueToken(c, param.Username)
	if err != nil {
		err = fmt.Errorf("failed issuing token with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("issued token")

	return token, nil
}

func (s *AuthService) IssueToken(c context.Context, username string) (string, error) {
	_, span := otel.Tracer.Start(c, "AuthService IssueToken")
	defer span.End()

	now := time.Now()
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{constants.AudienceOrderApi},
			Issuer:    constants.AppOrderApi,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	)

	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		otel.RecordError(err, span)
		return "", err
	}
	return signed, nil
}

func VerifyToken(c context.Context, cfg config.Application, token string) (*jwt.Token, error) {
	c, span := otel.Tracer.Start(c, "VerifyToken")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	logger.Trace().Msg("parsing claims")
	jwtToken, err := jwt.ParseWithClaims(token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SecretKey), nil
		},
		jwt.WithAudience(constants.AudienceOrderApi),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppOrderApi),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing claims with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, inErrors.ErrTokenInvalid
	}
	logger.Trace().Msg("parsed claims")

	if !jwtToken.Valid {
		err = fmt.Errorf("failed validating token with error=%w", inErrors.ErrTokenInvalid)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, inErrors.ErrTokenInvalid
	}

	return jwtToken, nil
}
