package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cardmart/cardmart/internal/gateway/epay"
	"github.com/cardmart/cardmart/internal/logger"
	"github.com/cardmart/cardmart/internal/models"
	"github.com/cardmart/cardmart/internal/repository"
)

// AdminOrderListView is the admin order list view path
const AdminOrderListView = "/admin/orders"

// AdminOrderDetailView returns the admin order detail view path
func AdminOrderDetailView(number string) string {
	return "/admin/orders/" + number
}

// PublicOrderView returns the public order view path
func PublicOrderView(number string) string {
	return "/orders/" + number
}

// Authorizer approves an operation before any mutation is attempted
type Authorizer interface {
	Authorize(ctx context.Context) error
}

// Notifier is informed about stale view paths after successful commits
type Notifier interface {
	Invalidate(path string)
}

// RefundGateway queries the payment gateway for transaction state
type RefundGateway interface {
	QueryOrder(ctx context.Context, orderNumber string) (*epay.OrderStatus, error)
}

// AdminOrderRepository is interface for interacting with order-related data
type AdminOrderRepository interface {
	// GetOrderByNumber returns order by number
	GetOrderByNumber(ctx context.Context, number string) (*models.Order, error)
	// MarkOrderPaid sets order status to paid and records the payment time
	MarkOrderPaid(ctx context.Context, number string, paidAt time.Time) error
	// MarkOrderDelivered sets order status to delivered and records the delivery time
	MarkOrderDelivered(ctx context.Context, number string, deliveredAt time.Time) error
	// UpdateOrderEmail sets order contact email, nil clears it
	UpdateOrderEmail(ctx context.Context, number string, email *string) error
	// SetOrderStatus updates order status
	SetOrderStatus(ctx context.Context, number string, status string) error
	// InTx runs fn inside a single database transaction
	InTx(ctx context.Context, fn func(tx repository.OrderTx) error) error
}

// AdminOrderService owns the order lifecycle transitions performed from the
// admin panel. Every operation is authorized first and reported to the
// notifier only after its effects have committed.
type AdminOrderService struct {
	repo        AdminOrderRepository
	gateway     RefundGateway
	auth        Authorizer
	notifier    Notifier
	merchantID  string
	merchantKey string
}

// NewAdminOrderService creates new AdminOrderService instance
func NewAdminOrderService(repo AdminOrderRepository, gateway RefundGateway, auth Authorizer, notifier Notifier, merchantID, merchantKey string) *AdminOrderService {
	return &AdminOrderService{
		repo:        repo,
		gateway:     gateway,
		auth:        auth,
		notifier:    notifier,
		merchantID:  merchantID,
		merchantKey: merchantKey,
	}
}

// invalidateOrderViews marks every view rendering the order as stale
func (s *AdminOrderService) invalidateOrderViews(number string) {
	s.notifier.Invalidate(AdminOrderListView)
	s.notifier.Invalidate(AdminOrderDetailView(number))
	s.notifier.Invalidate(PublicOrderView(number))
}

// MarkPaid sets the order status to paid. Re-applying is permitted and simply
// overwrites the payment timestamp.
func (s *AdminOrderService) MarkPaid(ctx context.Context, number string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}
	if number == "" {
		return models.ErrEmptyOrderID
	}

	if err := s.repo.MarkOrderPaid(ctx, number, time.Now()); err != nil {
		return err
	}

	s.invalidateOrderViews(number)
	return nil
}

// MarkDelivered sets the order status to delivered. The order must exist and
// must already have a card key assigned.
func (s *AdminOrderService) MarkDelivered(ctx context.Context, number string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}
	if number == "" {
		return models.ErrEmptyOrderID
	}

	order, err := s.repo.GetOrderByNumber(ctx, number)
	if err != nil {
		return err
	}

	if order.CardKey == nil || *order.CardKey == "" {
		return models.ErrOrderHasNoCard
	}

	if err := s.repo.MarkOrderDelivered(ctx, number, time.Now()); err != nil {
		return err
	}

	s.invalidateOrderViews(number)
	return nil
}

// isTerminal reports whether the order has already been compensated
func isTerminal(status string) bool {
	return status == models.OrderStatusCancelled || status == models.OrderStatusRefunded
}

// CancelOrder cancels the order in one transaction: credits used points back
// to the owning user, sets the status and releases unused card reservations.
// The order row is locked first, so a repeated or concurrent cancel sees the
// terminal status and never credits points twice.
func (s *AdminOrderService) CancelOrder(ctx context.Context, number string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}
	if number == "" {
		return models.ErrEmptyOrderID
	}

	err := s.repo.InTx(ctx, func(tx repository.OrderTx) error {
		order, err := tx.GetOrderForUpdate(ctx, number)
		if err != nil {
			return err
		}

		if isTerminal(order.Status) {
			// already compensated
			return nil
		}

		if order.PointsUsed > 0 && order.UserID != nil {
			if err := tx.CreditUserPoints(ctx, *order.UserID, order.PointsUsed); err != nil {
				return err
			}
		}

		if err := tx.MarkOrderCancelled(ctx, number); err != nil {
			return err
		}

		return tx.ReleaseCards(ctx, number)
	})
	if err != nil {
		return err
	}

	s.invalidateOrderViews(number)
	return nil
}

// UpdateOrderEmail sets the order contact email. The value is trimmed and an
// empty result clears the stored email.
func (s *AdminOrderService) UpdateOrderEmail(ctx context.Context, number string, email string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}
	if number == "" {
		return models.ErrEmptyOrderID
	}

	var value *string
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		value = &trimmed
	}

	if err := s.repo.UpdateOrderEmail(ctx, number, value); err != nil {
		return err
	}

	s.notifier.Invalidate(AdminOrderListView)
	s.notifier.Invalidate(AdminOrderDetailView(number))
	return nil
}

// DeleteOrder removes a single order with the same compensating sequence as
// the batch form. Deleting a missing order is a silent no-op.
func (s *AdminOrderService) DeleteOrder(ctx context.Context, number string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}
	if number == "" {
		return models.ErrEmptyOrderID
	}

	return s.DeleteOrders(ctx, []string{number})
}

// DeleteOrders removes the given orders inside one shared transaction. For
// each order the points are credited back, unused card reservations released
// and dependent refund requests removed before the order row itself. A failure
// anywhere rolls back the whole batch.
func (s *AdminOrderService) DeleteOrders(ctx context.Context, numbers []string) error {
	if err := s.auth.Authorize(ctx); err != nil {
		return err
	}

	filtered := make([]string, 0, len(numbers))
	for _, number := range numbers {
		if trimmed := strings.TrimSpace(number); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	err := s.repo.InTx(ctx, func(tx repository.OrderTx) error {
		for _, number := range filtered {
			if err := deleteOne(ctx, tx, number); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.Invalidate(AdminOrderListView)
	return nil
}

// deleteOne applies the compensating sequence and removes the order row
func deleteOne(ctx context.Context, tx repository.OrderTx, number string) error {
	order, err := tx.GetOrderForUpdate(ctx, number)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			// already gone
			return nil
		}
		return err
	}

	// a cancelled or refunded order has been compensated already
	if !isTerminal(order.Status) && order.PointsUsed > 0 && order.UserID != nil {
		if err := tx.CreditUserPoints(ctx, *order.UserID, order.PointsUsed); err != nil {
			return err
		}
	}

	if err := tx.ReleaseCards(ctx, number); err != nil {
		return err
	}

	// best effort, the refund request rows may not exist
	if err := tx.DeleteRefundRequests(ctx, number); err != nil {
		logger.Log.Debug("delete refund requests", zap.String("number", number), zap.Error(err))
	}

	return tx.DeleteOrder(ctx, number)
}

// VerifyOrderRefundStatus reconciles the local order status with the payment
// gateway. Gateway and transport failures never propagate as errors, they are
// reported inside the returned result.
func (s *AdminOrderService) VerifyOrderRefundStatus(ctx context.Context, number string) (*models.RefundQueryResult, error) {
	if err := s.auth.Authorize(ctx); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, models.ErrEmptyOrderID
	}
	if s.merchantID == "" || s.merchantKey == "" {
		return nil, models.ErrGatewayNotConfigured
	}

	status, err := s.gateway.QueryOrder(ctx, number)
	if err != nil {
		logger.Log.Warn("gateway query failed", zap.String("number", number), zap.Error(err))
		return &models.RefundQueryResult{Error: err.Error()}, nil
	}

	if status.Code != 1 {
		msg := status.Msg
		if msg == "" {
			msg = "Query failed"
		}
		return &models.RefundQueryResult{Error: msg}, nil
	}

	if status.Status == nil {
		return &models.RefundQueryResult{Success: true, Msg: "Gateway status: unknown"}, nil
	}

	switch *status.Status {
	case 0:
		// gateway confirms the refund, reflect it locally
		if err := s.repo.SetOrderStatus(ctx, number, models.OrderStatusRefunded); err != nil {
			return nil, err
		}
		s.notifier.Invalidate(AdminOrderListView)
		return &models.RefundQueryResult{Success: true, Status: status.Status, Msg: "Refunded (Verified)"}, nil
	case 1:
		return &models.RefundQueryResult{Success: true, Status: status.Status, Msg: "Paid (Not Refunded)"}, nil
	default:
		return &models.RefundQueryResult{Success: true, Status: status.Status, Msg: fmt.Sprintf("Gateway status: %d", *status.Status)}, nil
	}
}
