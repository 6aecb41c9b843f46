package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func WriteJsonResponse(
	c context.Context,
	w http.ResponseWriter,
	statusCode int,
	body interface{},
) {
	logger := zerolog.Ctx(c).With().Str("tag", "WriteJsonResponse").Logger()

	w.Header().Add(HeaderContentType, HeaderValueJson)
	w.WriteHeader(statusCode)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.Error().Err(err).Msgf("failed encoding response body with error=%s", err.Error())
		return
	}
}

func WriteErrorResponse(
	c context.Context,
	w http.ResponseWriter,
	statusCode int,
	err error,
) {
	WriteJsonResponse(c, w, statusCode, map[string]string{"error": err.Error()})
}

func WriteMessageResponse(
	c context.Context,
	w http.ResponseWriter,
	statusCode int,
	message string,
) {
	WriteJsonResponse(c, w, statusCode, map[string]string{"message": message})
}
