package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pedidolabs/order-api/internal/config"
	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/httpx"
	"github.com/pedidolabs/order-api/internal/log"
	"github.com/pedidolabs/order-api/internal/service"
)

// Auth guards a route with bearer token verification. The decoded claims
// are intentionally not propagated downstream; handlers never see a user
// identity.
func Auth(cfg config.Application) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				logger.Error().
					Err(inErrors.ErrEmptyAuth).
					Msg(inErrors.ErrEmptyAuth.Error())
				httpx.WriteErrorResponse(c, w, http.StatusUnauthorized, inErrors.ErrEmptyAuth)
				return
			}

			// Header shape is "<scheme> <token>"; the scheme itself is not
			// validated.
			token := ""
			if parts := strings.SplitN(authorization, " ", 2); len(parts) == 2 {
				token = parts[1]
			}

			_, err := service.VerifyToken(c, cfg, token)
			if err != nil {
				logger.Error().
					Err(inErrors.ErrTokenInvalid).
					Msg(inErrors.ErrTokenInvalid.Error())
				httpx.WriteErrorResponse(c, w, http.StatusUnauthorized, inErrors.ErrTokenInvalid)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
