package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardmart/cardmart/internal/models"
)

type AdminOrderService interface {
	// MarkPaid sets the order status to paid
	MarkPaid(ctx context.Context, number string) error
	// MarkDelivered sets the order status to delivered
	MarkDelivered(ctx context.Context, number string) error
	// CancelOrder cancels the order and compensates points and cards
	CancelOrder(ctx context.Context, number string) error
	// UpdateOrderEmail sets the order contact email
	UpdateOrderEmail(ctx context.Context, number string, email string) error
	// DeleteOrder removes a single order
	DeleteOrder(ctx context.Context, number string) error
	// DeleteOrders removes orders inside one shared transaction
	DeleteOrders(ctx context.Context, numbers []string) error
	// VerifyOrderRefundStatus reconciles the order status with the gateway
	VerifyOrderRefundStatus(ctx context.Context, number string) (*models.RefundQueryResult, error)
}

// AdminOrderHandler represents HTTP handler for admin order requests
type AdminOrderHandler struct {
	svc AdminOrderService
}

// NewAdminOrderHandler creates new AdminOrderHandler instance
func NewAdminOrderHandler(svc AdminOrderService) *AdminOrderHandler {
	return &AdminOrderHandler{svc: svc}
}

// writeError maps service errors to HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		http.Error(w, "admin privilege required", http.StatusUnauthorized)
	case errors.Is(err, models.ErrEmptyOrderID):
		http.Error(w, "order id is required", http.StatusBadRequest)
	case errors.Is(err, models.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrOrderHasNoCard):
		http.Error(w, "cannot mark delivered without a card", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// MarkOrderPaid marks order as paid
// 204 — статус обновлён;
// 401 — нет прав администратора;
// 400 — пустой номер заказа;
// 500 — внутренняя ошибка сервера.
func (ah *AdminOrderHandler) MarkOrderPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		if err := ah.svc.MarkPaid(r.Context(), number); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// MarkOrderDelivered marks order as delivered
// 204 — статус обновлён;
// 404 — заказ не найден;
// 409 — у заказа нет карты;
func (ah *AdminOrderHandler) MarkOrderDelivered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		if err := ah.svc.MarkDelivered(r.Context(), number); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CancelOrder cancels order and refunds points
func (ah *AdminOrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		if err := ah.svc.CancelOrder(r.Context(), number); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type updateEmailRequest struct {
	Email string `json:"email"`
}

// UpdateOrderEmail updates order contact email
func (ah *AdminOrderHandler) UpdateOrderEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		req := updateEmailRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ah.svc.UpdateOrderEmail(r.Context(), number, req.Email); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteOrder deletes single order
func (ah *AdminOrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		if err := ah.svc.DeleteOrder(r.Context(), number); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type batchDeleteRequest struct {
	Numbers []string `json:"numbers"`
}

// BatchDeleteOrders deletes orders in one transaction
func (ah *AdminOrderHandler) BatchDeleteOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := batchDeleteRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ah.svc.DeleteOrders(r.Context(), req.Numbers); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// VerifyOrderRefundStatus queries the gateway and returns a renderable result
// 200 — результат проверки, success/msg/error внутри;
// 401 — нет прав администратора;
// 500 — не настроены учётные данные шлюза.
func (ah *AdminOrderHandler) VerifyOrderRefundStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := chi.URLParam(r, "number")

		result, err := ah.svc.VerifyOrderRefundStatus(r.Context(), number)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			return
		}
	}
}
