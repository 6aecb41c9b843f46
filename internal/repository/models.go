package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Order struct {
	OrderID      string
	Value        pgtype.Numeric
	CreationDate pgtype.Timestamptz
}

type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID int64
	Quantity  int32
	Price     pgtype.Numeric
}
