package service

import (
	"strings"
	"time"

	"github.com/pedidolabs/order-api/internal/errors"
	"github.com/pedidolabs/order-api/internal/request"
	"github.com/pedidolabs/order-api/internal/response"
)

// MapOrder translates the external payload into the internal order shape.
// The orderId is derived by removing the first occurrence of the literal
// "-01" anywhere in numeroPedido, matching the upstream contract. A
// dataCriacao value that does not parse is kept as the zero time; the
// mapping layer does not reject it.
func MapOrder(param request.CreateOrder) (response.Order, error) {
	if param.NumeroPedido == "" || param.Items == nil {
		return response.Order{}, errors.ErrInvalidPayload
	}

	creationDate, _ := time.Parse(time.RFC3339Nano, param.DataCriacao)

	items := make([]response.OrderItem, 0, len(param.Items))
	for _, item := range param.Items {
		items = append(items, response.OrderItem{
			ProductId: int64(item.IdItem),
			Quantity:  item.QuantidadeItem,
			Price:     item.ValorItem,
		})
	}

	return response.Order{
		OrderId:      strings.Replace(param.NumeroPedido, "-01", "", 1),
		Value:        param.ValorTotal,
		CreationDate: creationDate,
		Items:        items,
	}, nil
}
