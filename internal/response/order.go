package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderId      string          `json:"orderId"`
	Value        decimal.Decimal `json:"value"`
	CreationDate time.Time       `json:"creationDate"`
	Items        []OrderItem     `json:"items"`
}

type OrderItem struct {
	ProductId int64           `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
