package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/log"
	"github.com/pedidolabs/order-api/internal/otel"
	"github.com/pedidolabs/order-api/internal/repository"
	"github.com/pedidolabs/order-api/internal/request"
	"github.com/pedidolabs/order-api/internal/response"
)

const (
	cacheKeyOrder = "order-api:order:%s"
	cacheTTLOrder = time.Hour
)

type OrderService struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
	cache   *redis.Client
}

func NewOrderService(
	pool *pgxpool.Pool,
	queries *repository.Queries,
	cache *redis.Client,
) *OrderService {
	return &OrderService{pool: pool, queries: queries, cache: cache}
}

func (s *OrderService) CreateOrder(
	c context.Context,
	param request.CreateOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateOrder").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	data, err := MapOrder(param)
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, data.OrderId).Logger()
	logger.Info().Msg("mapped order")

	logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
	logger.Info().Msg("inserting order with items")
	tx, err := s.pool.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed beginning transaction with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	defer func() { _ = tx.Rollback(c) }()

	qtx := s.queries.WithTx(tx)
	order, err := qtx.InsertOrder(c, repository.InsertOrderParams{
		OrderID:      data.OrderId,
		Value:        repository.NumericFromDecimal(data.Value),
		CreationDate: repository.TimestamptzFromTime(data.CreationDate),
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	items := []repository.OrderItem{}
	for _, item := range data.Items {
		inserted, err := qtx.InsertOrderItem(c, repository.InsertOrderItemParams{
			OrderID:   order.OrderID,
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
			Price:     repository.NumericFromDecimal(item.Price),
		})
		if err != nil {
			err = fmt.Errorf("failed inserting order item with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}
		items = append(items, inserted)
	}

	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("inserted order with items")

	res := order.Response(items)

	logger = logger.With().Str(log.KeyProcess, "caching order").Logger()
	logger.Info().Msg("caching order")
	s.cacheOrder(c, res)
	logger.Info().Msg("cached order")

	return res, nil
}

func (s *OrderService) FindOrders(c context.Context) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Str(log.KeyProcess, "finding orders").
		Logger()

	logger.Info().Msg("finding orders")
	orders, err := s.queries.FindOrders(c)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found orders")

	logger = logger.With().Str(log.KeyProcess, "finding order items").Logger()
	logger.Info().Msg("finding order items")
	items, err := s.queries.FindOrderItems(c)
	if err != nil {
		err = fmt.Errorf("failed finding order items with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msg("found order items")

	itemsByOrder := map[string][]repository.OrderItem{}
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	res := []response.Order{}
	for _, order := range orders {
		res = append(res, order.Response(itemsByOrder[order.OrderID]))
	}
	return res, nil
}

func (s *OrderService) FindOrderById(c context.Context, orderId string) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, orderId).
		Logger()

	cacheKey := fmt.Sprintf(cacheKeyOrder, orderId)

	logger = logger.With().Str(log.KeyProcess, "finding order in cache").Logger()
	logger.Trace().Msg("finding order in cache")
	cached, err := s.cache.Get(c, cacheKey).Result()
	if err == nil {
		res := response.Order{}
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			logger.Info().Msg("found order in cache")
			return res, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Error().Err(err).Msgf("failed finding order in cache with error=%s", err.Error())
	}

	logger = logger.With().Str(log.KeyProcess, "finding order by id").Logger()
	logger.Info().Msg("finding order by id")
	order, err := s.queries.FindOrderById(c, orderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("order not found")
			return response.Order{}, inErrors.ErrOrderNotFound
		}
		err = fmt.Errorf("failed finding order by id with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order by id")

	logger = logger.With().Str(log.KeyProcess, "finding order items").Logger()
	logger.Info().Msg("finding order items")
	items, err := s.queries.FindOrderItemsByOrderId(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed finding order items with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order items")

	res := order.Response(items)
	s.cacheOrder(c, res)
	return res, nil
}

func (s *OrderService) UpdateOrder(
	c context.Context,
	orderId string,
	param request.CreateOrder,
) error {
	c, span := otel.Tracer.Start(c, "OrderService UpdateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService UpdateOrder").
		Str(log.KeyOrderID, orderId).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "mapping order").Logger()
	logger.Info().Msg("mapping order")
	data, err := MapOrder(param)
	if err != nil {
		err = fmt.Errorf("failed mapping order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("mapped order")

	logger = logger.With().Str(log.KeyProcess, "finding order by id").Logger()
	logger.Info().Msg("finding order by id")
	_, err = s.queries.FindOrderById(c, orderId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Info().Msg("order not found")
			return inErrors.ErrOrderNotFound
		}
		err = fmt.Errorf("failed finding order by id with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("found order by id")

	// The mapped payload may imply a different orderId; the path id always
	// wins and the stored orderId is never changed.
	logger = logger.With().Str(log.KeyProcess, "updating order").Logger()
	logger.Info().Msg("updating order and replacing items")
	tx, err := s.pool.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed beginning transaction with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer func() { _ = tx.Rollback(c) }()

	qtx := s.queries.WithTx(tx)
	err = qtx.UpdateOrder(c, repository.UpdateOrderParams{
		OrderID:      orderId,
		Value:        repository.NumericFromDecimal(data.Value),
		CreationDate: repository.TimestamptzFromTime(data.CreationDate),
	})
	if err != nil {
		err = fmt.Errorf("failed updating order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	err = qtx.DeleteOrderItemsByOrderId(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed deleting order items with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	for _, item := range data.Items {
		_, err = qtx.InsertOrderItem(c, repository.InsertOrderItemParams{
			OrderID:   orderId,
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
			Price:     repository.NumericFromDecimal(item.Price),
		})
		if err != nil {
			err = fmt.Errorf("failed inserting order item with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
	}

	err = tx.Commit(c)
	if err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("updated order and replaced items")

	s.invalidateOrder(c, orderId)
	return nil
}

func (s *OrderService) DeleteOrder(c context.Context, orderId string) error {
	c, span := otel.Tracer.Start(c, "OrderService DeleteOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService DeleteOrder").
		Str(log.KeyOrderID, orderId).
		Str(log.KeyProcess, "deleting order").
		Logger()

	logger.Info().Msg("deleting order")
	deleted, err := s.queries.DeleteOrder(c, orderId)
	if err != nil {
		err = fmt.Errorf("failed deleting order with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if deleted == 0 {
		logger.Info().Msg("order not found")
		return inErrors.ErrOrderNotFound
	}
	logger.Info().Msg("deleted order")

	s.invalidateOrder(c, orderId)
	return nil
}

func (s *OrderService) cacheOrder(c context.Context, order response.Order) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService cacheOrder").
		Str(log.KeyOrderID, order.OrderId).
		Logger()

	encoded, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msgf("failed encoding order with error=%s", err.Error())
		return
	}
	cacheKey := fmt.Sprintf(cacheKeyOrder, order.OrderId)
	err = s.cache.Set(c, cacheKey, encoded, cacheTTLOrder).Err()
	if err != nil {
		logger.Error().Err(err).Msgf("failed caching order with error=%s", err.Error())
	}
}

func (s *OrderService) invalidateOrder(c context.Context, orderId string) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService invalidateOrder").
		Str(log.KeyOrderID, orderId).
		Logger()

	cacheKey := fmt.Sprintf(cacheKeyOrder, orderId)
	err := s.cache.Del(c, cacheKey).Err()
	if err != nil {
		logger.Error().Err(err).Msgf("failed invalidating cached order with error=%s", err.Error())
	}
}
