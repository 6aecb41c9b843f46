package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (order_id, value, creation_date)
VALUES ($1, $2, $3)
RETURNING order_id, value, creation_date
`

type InsertOrderParams struct {
	OrderID      string
	Value        pgtype.Numeric
	CreationDate pgtype.Timestamptz
}

func (q *Queries) InsertOrder(c context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(c, insertOrder, arg.OrderID, arg.Value, arg.CreationDate)
	var o Order
	err := row.Scan(&o.OrderID, &o.Value, &o.CreationDate)
	return o, err
}

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, quantity, price)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, product_id, quantity, price
`

type InsertOrderItemParams struct {
	OrderID   string
	ProductID int64
	Quantity  int32
	Price     pgtype.Numeric
}

func (q *Queries) InsertOrderItem(c context.Context, arg InsertOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(c, insertOrderItem, arg.OrderID, arg.ProductID, arg.Quantity, arg.Price)
	var i OrderItem
	err := row.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.Price)
	return i, err
}

const findOrders = `
SELECT order_id, value, creation_date
FROM orders
ORDER BY order_id
`

func (q *Queries) FindOrders(c context.Context) ([]Order, error) {
	rows, err := q.db.Query(c, findOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.Value, &o.CreationDate); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

const findOrderById = `
SELECT order_id, value, creation_date
FROM orders
WHERE order_id = $1
`

func (q *Queries) FindOrderById(c context.Context, orderId string) (Order, error) {
	row := q.db.QueryRow(c, findOrderById, orderId)
	var o Order
	err := row.Scan(&o.OrderID, &o.Value, &o.CreationDate)
	return o, err
}

const findOrderItems = `
SELECT id, order_id, product_id, quantity, price
FROM order_items
ORDER BY order_id, id
`

func (q *Queries) FindOrderItems(c context.Context) ([]OrderItem, error) {
	rows, err := q.db.Query(c, findOrderItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OrderItem{}
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const findOrderItemsByOrderId = `
SELECT id, order_id, product_id, quantity, price
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) FindOrderItemsByOrderId(c context.Context, orderId string) ([]OrderItem, error) {
	rows, err := q.db.Query(c, findOrderItemsByOrderId, orderId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OrderItem{}
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ProductID, &i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateOrder = `
UPDATE orders
SET value = $2, creation_date = $3
WHERE order_id = $1
`

type UpdateOrderParams struct {
	OrderID      string
	Value        pgtype.Numeric
	CreationDate pgtype.Timestamptz
}

func (q *Queries) UpdateOrder(c context.Context, arg UpdateOrderParams) error {
	_, err := q.db.Exec(c, updateOrder, arg.OrderID, arg.Value, arg.CreationDate)
	return err
}

const deleteOrderItemsByOrderId = `
DELETE FROM order_items
WHERE order_id = $1
`

func (q *Queries) DeleteOrderItemsByOrderId(c context.Context, orderId string) error {
	_, err := q.db.Exec(c, deleteOrderItemsByOrderId, orderId)
	return err
}

const deleteOrder = `
DELETE FROM orders
WHERE order_id = $1
`

func (q *Queries) DeleteOrder(c context.Context, orderId string) (int64, error) {
	tag, err := q.db.Exec(c, deleteOrder, orderId)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
