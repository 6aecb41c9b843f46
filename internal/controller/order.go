package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/pedidolabs/order-api/internal/config"
	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/httpx"
	"github.com/pedidolabs/order-api/internal/log"
	"github.com/pedidolabs/order-api/internal/middleware"
	"github.com/pedidolabs/order-api/internal/otel"
	"github.com/pedidolabs/order-api/internal/request"
	"github.com/pedidolabs/order-api/internal/service"
)

type OrderController struct {
	service *service.OrderService
}

func AttachOrderController(
	mux *mux.Router,
	service *service.OrderService,
	cfg config.Application,
) {
	controller := OrderController{service: service}

	router := mux.PathPrefix("/order").Subrouter()
	router.Use(middleware.Auth(cfg))
	router.HandleFunc("", controller.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/list", controller.FindOrders).Methods(http.MethodGet)
	router.HandleFunc("/{orderId}", controller.FindOrderById).Methods(http.MethodGet)
	router.HandleFunc("/{orderId}", controller.UpdateOrder).Methods(http.MethodPut)
	router.HandleFunc("/{orderId}", controller.DeleteOrder).Methods(http.MethodDelete)
}

func (o *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController CreateOrder").
		Logger()
	c = logger.WithContext(c)

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateOrder{}
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, inErrors.ErrInvalidPayload)
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating request body").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, param); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, inErrors.ErrInvalidPayload)
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "creating order").Logger()
	logger.Info().Msg("creating order")
	c = logger.WithContext(c)
	order, err := o.service.CreateOrder(c, param)
	if err != nil {
		err = fmt.Errorf("failed creating order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, err)
		return
	}
	logger.Info().Msg("created order")

	httpx.WriteJsonResponse(c, w, http.StatusCreated, order)
}

func (o *OrderController) FindOrders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindOrders").
		Str(log.KeyProcess, "finding orders").
		Logger()

	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	orders, err := o.service.FindOrders(c)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusInternalServerError, err)
		return
	}
	logger.Info().Any(log.KeyOrders, orders).Msg("found orders")

	httpx.WriteJsonResponse(c, w, http.StatusOK, orders)
}

func (o *OrderController) FindOrderById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController FindOrderById")
	defer span.End()

	orderId := mux.Vars(r)["orderId"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController FindOrderById").
		Str(log.KeyOrderID, orderId).
		Str(log.KeyProcess, "finding order by id").
		Logger()

	logger.Info().Msg("finding order by id")
	c = logger.WithContext(c)
	order, err := o.service.FindOrderById(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed finding order by id with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			httpx.WriteErrorResponse(c, w, http.StatusNotFound, inErrors.ErrOrderNotFound)
			return
		}
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, err)
		return
	}
	logger.Info().Msg("found order by id")

	httpx.WriteJsonResponse(c, w, http.StatusOK, order)
}

func (o *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController UpdateOrder")
	defer span.End()

	orderId := mux.Vars(r)["orderId"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController UpdateOrder").
		Str(log.KeyOrderID, orderId).
		Logger()
	c = logger.WithContext(c)

	logger = logger.With().Str(log.KeyProcess, "decoding request body").Logger()
	logger.Info().Msg("decoding request body")
	param := request.CreateOrder{}
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, inErrors.ErrInvalidPayload)
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "updating order").Logger()
	logger.Info().Msg("updating order")
	c = logger.WithContext(c)
	err := o.service.UpdateOrder(c, orderId, param)
	if err != nil {
		err = fmt.Errorf("failed updating order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			httpx.WriteErrorResponse(c, w, http.StatusNotFound, inErrors.ErrOrderNotFound)
			return
		}
		httpx.WriteErrorResponse(c, w, http.StatusBadRequest, err)
		return
	}
	logger.Info().Msg("updated order")

	httpx.WriteMessageResponse(c, w, http.StatusOK, "order updated")
}

func (o *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "OrderController DeleteOrder")
	defer span.End()

	orderId := mux.Vars(r)["orderId"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderController DeleteOrder").
		Str(log.KeyOrderID, orderId).
		Str(log.KeyProcess, "deleting order").
		Logger()

	logger.Info().Msg("deleting order")
	c = logger.WithContext(c)
	err := o.service.DeleteOrder(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed deleting order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		if errors.Is(err, inErrors.ErrOrderNotFound) {
			httpx.WriteErrorResponse(c, w, http.StatusNotFound, inErrors.ErrOrderNotFound)
			return
		}
		httpx.WriteErrorResponse(c, w, http.StatusInternalServerError, err)
		return
	}
	logger.Info().Msg("deleted order")

	httpx.WriteMessageResponse(c, w, http.StatusOK, "order deleted")
}
