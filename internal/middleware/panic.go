package middleware

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pedidolabs/order-api/internal/httpx"
	"github.com/pedidolabs/order-api/internal/otel"
)

func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, span := otel.Tracer.Start(r.Context(), "RecoverPanic")
		defer span.End()

		logger := zerolog.Ctx(c).With().Logger()
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("recovered from panic: %v", rec)
				logger.Error().Err(err).Stack().Msg(err.Error())
				otel.RecordError(err, span)
				httpx.WriteErrorResponse(c, w, http.StatusInternalServerError, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
