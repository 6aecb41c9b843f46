package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/request"
)

func TestMapOrder(t *testing.T) {
	payload := `{
		"numeroPedido": "v10089015vdb-01",
		"valorTotal": 10000,
		"dataCriacao": "2023-07-19T12:24:11.529Z",
		"items": [
			{"idItem": "2434", "quantidadeItem": 1, "valorItem": 1000}
		]
	}`
	param := request.CreateOrder{}
	err := json.Unmarshal([]byte(payload), &param)
	assert.NoError(t, err)

	mapped, err := MapOrder(param)
	assert.NoError(t, err)
	assert.Equal(t, "v10089015vdb", mapped.OrderId)
	assert.True(t, mapped.Value.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, time.Date(2023, 7, 19, 12, 24, 11, 529000000, time.UTC), mapped.CreationDate)
	assert.Len(t, mapped.Items, 1)
	assert.Equal(t, int64(2434), mapped.Items[0].ProductId)
	assert.Equal(t, int32(1), mapped.Items[0].Quantity)
	assert.True(t, mapped.Items[0].Price.Equal(decimal.NewFromInt(1000)))
}

func TestMapOrderIdDerivation(t *testing.T) {
	tests := []struct {
		name         string
		numeroPedido string
		expected     string
	}{
		{
			name:         "removes trailing -01",
			numeroPedido: "v10089015vdb-01",
			expected:     "v10089015vdb",
		},
		{
			name:         "removes -01 anywhere in the string",
			numeroPedido: "ab-01cd",
			expected:     "abcd",
		},
		{
			name:         "removes only the first occurrence",
			numeroPedido: "x-01y-01",
			expected:     "xy-01",
		},
		{
			name:         "passes through when -01 is absent",
			numeroPedido: "v10089015vdb",
			expected:     "v10089015vdb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped, err := MapOrder(request.CreateOrder{
				NumeroPedido: tt.numeroPedido,
				Items:        []request.OrderItem{},
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, mapped.OrderId)
		})
	}
}

func TestMapOrderInvalidDateTolerated(t *testing.T) {
	mapped, err := MapOrder(request.CreateOrder{
		NumeroPedido: "abc",
		DataCriacao:  "not-a-date",
		Items:        []request.OrderItem{},
	})
	assert.NoError(t, err)
	assert.True(t, mapped.CreationDate.IsZero())
}

func TestMapOrderNumericItemId(t *testing.T) {
	payload := `{
		"numeroPedido": "abc",
		"valorTotal": 500,
		"dataCriacao": "2023-07-19T12:24:11.529Z",
		"items": [
			{"idItem": 77, "quantidadeItem": 2, "valorItem": 250}
		]
	}`
	param := request.CreateOrder{}
	err := json.Unmarshal([]byte(payload), &param)
	assert.NoError(t, err)

	mapped, err := MapOrder(param)
	assert.NoError(t, err)
	assert.Equal(t, int64(77), mapped.Items[0].ProductId)
}

func TestMapOrderInvalidPayload(t *testing.T) {
	tests := []struct {
		name  string
		param request.CreateOrder
	}{
		{
			name:  "missing numeroPedido",
			param: request.CreateOrder{Items: []request.OrderItem{}},
		},
		{
			name:  "missing items",
			param: request.CreateOrder{NumeroPedido: "abc"},
		},
		{
			name:  "empty payload",
			param: request.CreateOrder{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MapOrder(tt.param)
			assert.ErrorIs(t, err, inErrors.ErrInvalidPayload)
		})
	}
}
