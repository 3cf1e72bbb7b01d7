package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardmart/cardmart/internal/models"
	"github.com/cardmart/cardmart/internal/repository/postgres"
)

const (
	selectOrderByNumberQuery = `
						SELECT id, number, status, user_id, points_used, email, card_key, paid_at, delivered_at, created_at
						FROM orders
						WHERE number = $1
`
	selectOrderForUpdateQuery = `
						SELECT id, number, status, user_id, points_used, email, card_key, paid_at, delivered_at, created_at
						FROM orders
						WHERE number = $1
						FOR UPDATE
`
	markOrderPaidQuery = `
						UPDATE orders
						SET status = $1, paid_at = $2
						WHERE number = $3
`
	markOrderDeliveredQuery = `
						UPDATE orders
						SET status = $1, delivered_at = $2
						WHERE number = $3
`
	updateOrderEmailQuery = `
						UPDATE orders
						SET email = $1
						WHERE number = $2
`
	setOrderStatusQuery = `
						UPDATE orders
						SET status = $1
						WHERE number = $2
`
	creditUserPointsQuery = `
						UPDATE users
						SET points = points + $1
						WHERE id = $2
`
	releaseCardsQuery = `
						UPDATE cards
						SET reserved_order = NULL, reserved_at = NULL
						WHERE reserved_order = $1 AND used = FALSE
`
	deleteRefundRequestsQuery = `
						DELETE FROM refund_requests
						WHERE order_number = $1
`
	deleteOrderQuery = `
						DELETE FROM orders
						WHERE number = $1
`
)

// OrderTx is the transactional context shared by compensating routines. Every
// method runs inside the same database transaction, either all effects commit
// together or none do.
type OrderTx interface {
	// GetOrderForUpdate reads the order row and locks it until commit
	GetOrderForUpdate(ctx context.Context, number string) (*models.Order, error)
	// CreditUserPoints adds points back to the user balance
	CreditUserPoints(ctx context.Context, userID uint64, points int64) error
	// ReleaseCards clears reservations held for the order on unused cards
	ReleaseCards(ctx context.Context, number string) error
	// MarkOrderCancelled sets order status to cancelled
	MarkOrderCancelled(ctx context.Context, number string) error
	// DeleteRefundRequests removes refund requests linked to the order
	DeleteRefundRequests(ctx context.Context, number string) error
	// DeleteOrder removes the order row
	DeleteOrder(ctx context.Context, number string) error
}

// OrderRepository implements AdminOrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := models.Order{}
	err := row.Scan(&order.ID, &order.Number, &order.Status, &order.UserID, &order.PointsUsed,
		&order.Email, &order.CardKey, &order.PaidAt, &order.DeliveredAt, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderByNumber returns order by number
func (or *OrderRepository) GetOrderByNumber(ctx context.Context, number string) (*models.Order, error) {
	return scanOrder(or.db.QueryRow(ctx, selectOrderByNumberQuery, number))
}

// MarkOrderPaid sets order status to paid and records the payment time.
// Re-application simply overwrites the timestamp, a missing order is not an error.
func (or *OrderRepository) MarkOrderPaid(ctx context.Context, number string, paidAt time.Time) error {
	_, err := or.db.Exec(ctx, markOrderPaidQuery, models.OrderStatusPaid, paidAt, number)
	return err
}

// MarkOrderDelivered sets order status to delivered and records the delivery time
func (or *OrderRepository) MarkOrderDelivered(ctx context.Context, number string, deliveredAt time.Time) error {
	cmd, err := or.db.Exec(ctx, markOrderDeliveredQuery, models.OrderStatusDelivered, deliveredAt, number)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderEmail sets order contact email, nil clears it
func (or *OrderRepository) UpdateOrderEmail(ctx context.Context, number string, email *string) error {
	_, err := or.db.Exec(ctx, updateOrderEmailQuery, email, number)
	return err
}

// SetOrderStatus updates order status
func (or *OrderRepository) SetOrderStatus(ctx context.Context, number string, status string) error {
	cmd, err := or.db.Exec(ctx, setOrderStatusQuery, status, number)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return nil
}

// InTx runs fn inside a single database transaction. The transaction is rolled
// back when fn returns an error and committed otherwise.
func (or *OrderRepository) InTx(ctx context.Context, fn func(tx OrderTx) error) error {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&orderTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// orderTx implements OrderTx on top of a pgx transaction
type orderTx struct {
	tx pgx.Tx
}

func (t *orderTx) GetOrderForUpdate(ctx context.Context, number string) (*models.Order, error) {
	return scanOrder(t.tx.QueryRow(ctx, selectOrderForUpdateQuery, number))
}

func (t *orderTx) CreditUserPoints(ctx context.Context, userID uint64, points int64) error {
	_, err := t.tx.Exec(ctx, creditUserPointsQuery, points, userID)
	return err
}

func (t *orderTx) ReleaseCards(ctx context.Context, number string) error {
	_, err := t.tx.Exec(ctx, releaseCardsQuery, number)
	return err
}

func (t *orderTx) MarkOrderCancelled(ctx context.Context, number string) error {
	_, err := t.tx.Exec(ctx, setOrderStatusQuery, models.OrderStatusCancelled, number)
	return err
}

func (t *orderTx) DeleteRefundRequests(ctx context.Context, number string) error {
	_, err := t.tx.Exec(ctx, deleteRefundRequestsQuery, number)
	return err
}

func (t *orderTx) DeleteOrder(ctx context.Context, number string) error {
	_, err := t.tx.Exec(ctx, deleteOrderQuery, number)
	return err
}
