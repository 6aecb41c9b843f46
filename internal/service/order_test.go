package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/request"
)

func newCreateOrder(numeroPedido string, valorTotal int64, items ...request.OrderItem) request.CreateOrder {
	if items == nil {
		items = []request.OrderItem{}
	}
	return request.CreateOrder{
		NumeroPedido: numeroPedido,
		ValorTotal:   decimal.NewFromInt(valorTotal),
		DataCriacao:  "2023-07-19T12:24:11.529Z",
		Items:        items,
	}
}

func TestCreateOrderThenFindById(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	param := newCreateOrder(
		"v10089015vdb-01",
		10000,
		request.OrderItem{IdItem: 2434, QuantidadeItem: 1, ValorItem: decimal.NewFromInt(1000)},
	)

	created, err := orderService.CreateOrder(c, param)
	assert.NoError(t, err)
	assert.Equal(t, "v10089015vdb", created.OrderId)
	assert.True(t, created.Value.Equal(decimal.NewFromInt(10000)))
	assert.Len(t, created.Items, 1)

	found, err := orderService.FindOrderById(c, "v10089015vdb")
	assert.NoError(t, err)
	assert.Equal(t, created.OrderId, found.OrderId)
	assert.True(t, created.Value.Equal(found.Value))
	assert.Len(t, found.Items, 1)
	assert.Equal(t, int64(2434), found.Items[0].ProductId)
	assert.Equal(t, int32(1), found.Items[0].Quantity)
	assert.True(t, found.Items[0].Price.Equal(decimal.NewFromInt(1000)))
}

func TestFindOrderByIdNotFound(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	_, err := orderService.FindOrderById(c, "missing")
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}

func TestFindOrders(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	_, err := orderService.CreateOrder(c, newCreateOrder(
		"order-a",
		100,
		request.OrderItem{IdItem: 1, QuantidadeItem: 1, ValorItem: decimal.NewFromInt(100)},
	))
	assert.NoError(t, err)
	_, err = orderService.CreateOrder(c, newCreateOrder(
		"order-b",
		200,
		request.OrderItem{IdItem: 2, QuantidadeItem: 1, ValorItem: decimal.NewFromInt(100)},
		request.OrderItem{IdItem: 3, QuantidadeItem: 2, ValorItem: decimal.NewFromInt(50)},
	))
	assert.NoError(t, err)

	orders, err := orderService.FindOrders(c)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	itemsByOrder := map[string]int{}
	for _, order := range orders {
		itemsByOrder[order.OrderId] = len(order.Items)
	}
	assert.Equal(t, 1, itemsByOrder["order-a"])
	assert.Equal(t, 2, itemsByOrder["order-b"])
}

func TestUpdateOrderReplacesItems(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	_, err := orderService.CreateOrder(c, newCreateOrder(
		"order-a",
		300,
		request.OrderItem{IdItem: 1, QuantidadeItem: 1, ValorItem: decimal.NewFromInt(100)},
		request.OrderItem{IdItem: 2, QuantidadeItem: 2, ValorItem: decimal.NewFromInt(100)},
	))
	assert.NoError(t, err)

	err = orderService.UpdateOrder(c, "order-a", newCreateOrder(
		"another-number",
		500,
		request.OrderItem{IdItem: 9, QuantidadeItem: 5, ValorItem: decimal.NewFromInt(100)},
	))
	assert.NoError(t, err)

	found, err := orderService.FindOrderById(c, "order-a")
	assert.NoError(t, err)
	assert.Equal(t, "order-a", found.OrderId)
	assert.True(t, found.Value.Equal(decimal.NewFromInt(500)))
	assert.Len(t, found.Items, 1)
	assert.Equal(t, int64(9), found.Items[0].ProductId)
	assert.Equal(t, int32(5), found.Items[0].Quantity)
}

func TestUpdateOrderNotFound(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, _, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	err := orderService.UpdateOrder(c, "missing", newCreateOrder("missing", 100))
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	c := context.Background()
	redisClient, pool, pgContainer, redisContainer, queries, orderService := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)

	_, err := orderService.CreateOrder(c, newCreateOrder(
		"order-a",
		100,
		request.OrderItem{IdItem: 1, QuantidadeItem: 1, ValorItem: decimal.NewFromInt(100)},
	))
	assert.NoError(t, err)

	err = orderService.DeleteOrder(c, "order-a")
	assert.NoError(t, err)

	_, err = orderService.FindOrderById(c, "order-a")
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)

	items, err := queries.FindOrderItemsByOrderId(c, "order-a")
	assert.NoError(t, err)
	assert.Empty(t, items)

	err = orderService.DeleteOrder(c, "order-a")
	assert.ErrorIs(t, err, inErrors.ErrOrderNotFound)
}
