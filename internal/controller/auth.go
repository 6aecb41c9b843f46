package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/httpx"
	"github.com/pedidolabs/order-api/internal/log"
	"github.com/pedidolabs/order-api/internal/otel"
	"github.com/pedidolabs/order-api/internal/request"
	"github.com/pedidolabs/order-api/internal/service"
)

type AuthController struct {
	service *service.AuthService
}

func AttachAuthController(mux *mux.Router, service *service.AuthService) {
	controller := AuthController{service: service}
	mux.HandleFunc("/login", controller.Login).Methods(http.MethodPost)
}

func (a *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "AuthController Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AuthController Login").
		Logger()
	c = logger.WithContext(c)

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.Login{}
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusUnauthorized, inErrors.ErrInvalidCredentials)
		return
	}
	logger = logger.With().Object(log.KeyRequestBody, param).Logger()
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, param); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusUnauthorized, inErrors.ErrInvalidCredentials)
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "login").Logger()
	logger.Info().Msg("login")
	c = logger.WithContext(c)
	token, err := a.service.Login(c, param)
	if err != nil {
		err = fmt.Errorf("failed login with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusUnauthorized, inErrors.ErrInvalidCredentials)
		return
	}
	logger.Info().Msg("login success")

	httpx.WriteJsonResponse(c, w, http.StatusOK, map[string]string{"token": token})
}
