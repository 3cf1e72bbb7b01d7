package models

import "time"

// order status
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// Order is order entity. Number is the opaque shop reference the admin UI and
// the payment gateway both key on.
type Order struct {
	ID          uint64
	Number      string
	Status      string
	UserID      *uint64
	PointsUsed  int64
	Email       *string
	CardKey     *string
	PaidAt      *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
}
