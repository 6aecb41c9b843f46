package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/pedidolabs/order-api/internal/response"
)

func (o Order) Response(items []OrderItem) response.Order {
	orderItems := []response.OrderItem{}
	for _, i := range items {
		orderItems = append(orderItems, i.Response())
	}
	return response.Order{
		OrderId:      o.OrderID,
		Value:        decimal.NewFromBigInt(o.Value.Int, o.Value.Exp),
		CreationDate: o.CreationDate.Time,
		Items:        orderItems,
	}
}

func (i OrderItem) Response() response.OrderItem {
	return response.OrderItem{
		ProductId: i.ProductID,
		Quantity:  i.Quantity,
		Price:     decimal.NewFromBigInt(i.Price.Int, i.Price.Exp),
	}
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func TimestamptzFromTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
