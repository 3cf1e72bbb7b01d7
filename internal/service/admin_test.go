package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardmart/cardmart/internal/gateway/epay"
	"github.com/cardmart/cardmart/internal/models"
	"github.com/cardmart/cardmart/internal/repository"
	"github.com/cardmart/cardmart/internal/service/mocks"
)

type adminMocks struct {
	repo     *mocks.MockAdminOrderRepository
	tx       *mocks.MockOrderTx
	gateway  *mocks.MockRefundGateway
	auth     *mocks.MockAuthorizer
	notifier *mocks.MockNotifier
}

func newAdminMocks(t *testing.T) adminMocks {
	ctrl := gomock.NewController(t)
	return adminMocks{
		repo:     mocks.NewMockAdminOrderRepository(ctrl),
		tx:       mocks.NewMockOrderTx(ctrl),
		gateway:  mocks.NewMockRefundGateway(ctrl),
		auth:     mocks.NewMockAuthorizer(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
}

func (am adminMocks) service(merchantID, merchantKey string) *AdminOrderService {
	return NewAdminOrderService(am.repo, am.gateway, am.auth, am.notifier, merchantID, merchantKey)
}

// passThroughTx makes InTx invoke its callback with the mocked transaction,
// returning whatever the callback returns, like the real commit path does.
func (am adminMocks) passThroughTx() {
	am.repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(repository.OrderTx) error) error {
			return fn(am.tx)
		})
}

func (am adminMocks) expectOrderViews(number string) {
	am.notifier.EXPECT().Invalidate(AdminOrderListView)
	am.notifier.EXPECT().Invalidate(AdminOrderDetailView(number))
	am.notifier.EXPECT().Invalidate(PublicOrderView(number))
}

func uintPtr(v uint64) *uint64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestAdminOrderService_MarkPaid(t *testing.T) {
	t.Run("unauthorized_performs_no_mutation", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(models.ErrUnauthorized)

		err := am.service("", "").MarkPaid(context.Background(), "O-1")
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("empty_order_id", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)

		err := am.service("", "").MarkPaid(context.Background(), "")
		assert.ErrorIs(t, err, models.ErrEmptyOrderID)
	})

	t.Run("success_invalidates_three_views", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.repo.EXPECT().MarkOrderPaid(gomock.Any(), "O-1", gomock.Any()).Return(nil)
		am.expectOrderViews("O-1")

		err := am.service("", "").MarkPaid(context.Background(), "O-1")
		assert.NoError(t, err)
	})

	t.Run("store_error_skips_invalidation", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.repo.EXPECT().MarkOrderPaid(gomock.Any(), "O-1", gomock.Any()).Return(errors.New("store down"))

		err := am.service("", "").MarkPaid(context.Background(), "O-1")
		assert.Error(t, err)
	})
}

func TestAdminOrderService_MarkDelivered(t *testing.T) {
	tests := []struct {
		name    string
		order   *models.Order
		readErr error
		wantErr error
	}{
		{
			name:    "order_not_found",
			readErr: models.ErrOrderNotFound,
			wantErr: models.ErrOrderNotFound,
		},
		{
			name:    "nil_card_key",
			order:   &models.Order{Number: "O-1", Status: models.OrderStatusPaid},
			wantErr: models.ErrOrderHasNoCard,
		},
		{
			name:    "empty_card_key",
			order:   &models.Order{Number: "O-1", Status: models.OrderStatusPaid, CardKey: strPtr("")},
			wantErr: models.ErrOrderHasNoCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := newAdminMocks(t)
			am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
			am.repo.EXPECT().GetOrderByNumber(gomock.Any(), "O-1").Return(tt.order, tt.readErr)
			// status must never be mutated on a failed precondition,
			// MarkOrderDelivered has no expectation set

			err := am.service("", "").MarkDelivered(context.Background(), "O-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("success", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.repo.EXPECT().GetOrderByNumber(gomock.Any(), "O-1").
			Return(&models.Order{Number: "O-1", Status: models.OrderStatusPaid, CardKey: strPtr("CARD-42")}, nil)
		am.repo.EXPECT().MarkOrderDelivered(gomock.Any(), "O-1", gomock.Any()).Return(nil)
		am.expectOrderViews("O-1")

		err := am.service("", "").MarkDelivered(context.Background(), "O-1")
		assert.NoError(t, err)
	})
}

func TestAdminOrderService_CancelOrder(t *testing.T) {
	t.Run("credits_points_back_to_owner", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "O-1").
			Return(&models.Order{Number: "O-1", Status: models.OrderStatusPaid, UserID: uintPtr(7), PointsUsed: 120}, nil)
		am.tx.EXPECT().CreditUserPoints(gomock.Any(), uint64(7), int64(120)).Return(nil)
		am.tx.EXPECT().MarkOrderCancelled(gomock.Any(), "O-1").Return(nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "O-1").Return(nil)
		am.expectOrderViews("O-1")

		err := am.service("", "").CancelOrder(context.Background(), "O-1")
		assert.NoError(t, err)
	})

	t.Run("no_owner_leaves_balances_untouched", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "O-1").
			Return(&models.Order{Number: "O-1", Status: models.OrderStatusPaid, PointsUsed: 50}, nil)
		// CreditUserPoints has no expectation, the mock controller fails on any call
		am.tx.EXPECT().MarkOrderCancelled(gomock.Any(), "O-1").Return(nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "O-1").Return(nil)
		am.expectOrderViews("O-1")

		err := am.service("", "").CancelOrder(context.Background(), "O-1")
		assert.NoError(t, err)
	})

	t.Run("second_cancel_does_not_credit_twice", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "O-1").
			Return(&models.Order{Number: "O-1", Status: models.OrderStatusCancelled, UserID: uintPtr(7), PointsUsed: 120}, nil)
		am.expectOrderViews("O-1")

		err := am.service("", "").CancelOrder(context.Background(), "O-1")
		assert.NoError(t, err)
	})

	t.Run("transaction_error_skips_invalidation", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "O-1").Return(nil, errors.New("store down"))

		err := am.service("", "").CancelOrder(context.Background(), "O-1")
		assert.Error(t, err)
	})
}

func TestAdminOrderService_UpdateOrderEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  *string
	}{
		{
			name:  "blank_normalizes_to_null",
			email: "  ",
			want:  nil,
		},
		{
			name:  "value_is_trimmed",
			email: " a@b.com ",
			want:  strPtr("a@b.com"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := newAdminMocks(t)
			am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)

			var got *string
			am.repo.EXPECT().UpdateOrderEmail(gomock.Any(), "O-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, email *string) error {
					got = email
					return nil
				})
			// list and detail only, the public order page keeps its cache
			am.notifier.EXPECT().Invalidate(AdminOrderListView)
			am.notifier.EXPECT().Invalidate(AdminOrderDetailView("O-1"))

			err := am.service("", "").UpdateOrderEmail(context.Background(), "O-1", tt.email)
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestAdminOrderService_DeleteOrders(t *testing.T) {
	t.Run("empty_batch_is_noop", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		// no InTx, no Invalidate expectations

		err := am.service("", "").DeleteOrders(context.Background(), nil)
		assert.NoError(t, err)
	})

	t.Run("blank_ids_are_filtered_out", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)

		err := am.service("", "").DeleteOrders(context.Background(), []string{" ", ""})
		assert.NoError(t, err)
	})

	t.Run("whole_batch_shares_one_transaction", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()

		for _, number := range []string{"A", "B"} {
			number := number
			am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), number).
				Return(&models.Order{Number: number, Status: models.OrderStatusPaid, UserID: uintPtr(3), PointsUsed: 10}, nil)
			am.tx.EXPECT().CreditUserPoints(gomock.Any(), uint64(3), int64(10)).Return(nil)
			am.tx.EXPECT().ReleaseCards(gomock.Any(), number).Return(nil)
			am.tx.EXPECT().DeleteRefundRequests(gomock.Any(), number).Return(nil)
			am.tx.EXPECT().DeleteOrder(gomock.Any(), number).Return(nil)
		}
		// a single list invalidation for the whole batch
		am.notifier.EXPECT().Invalidate(AdminOrderListView)

		err := am.service("", "").DeleteOrders(context.Background(), []string{"A", " B "})
		assert.NoError(t, err)
	})

	t.Run("failure_mid_batch_aborts_everything", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()

		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "A").
			Return(&models.Order{Number: "A", Status: models.OrderStatusPending}, nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().DeleteRefundRequests(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().DeleteOrder(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "B").Return(nil, errors.New("store down"))
		// no invalidation fires, the transaction callback returned an error

		err := am.service("", "").DeleteOrders(context.Background(), []string{"A", "B"})
		assert.Error(t, err)
	})

	t.Run("missing_order_is_silently_skipped", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()

		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "GONE").Return(nil, models.ErrOrderNotFound)
		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "B").
			Return(&models.Order{Number: "B", Status: models.OrderStatusPending}, nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "B").Return(nil)
		am.tx.EXPECT().DeleteRefundRequests(gomock.Any(), "B").Return(nil)
		am.tx.EXPECT().DeleteOrder(gomock.Any(), "B").Return(nil)
		am.notifier.EXPECT().Invalidate(AdminOrderListView)

		err := am.service("", "").DeleteOrders(context.Background(), []string{"GONE", "B"})
		assert.NoError(t, err)
	})

	t.Run("cancelled_order_is_not_credited_again", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()

		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "A").
			Return(&models.Order{Number: "A", Status: models.OrderStatusCancelled, UserID: uintPtr(3), PointsUsed: 10}, nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().DeleteRefundRequests(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().DeleteOrder(gomock.Any(), "A").Return(nil)
		am.notifier.EXPECT().Invalidate(AdminOrderListView)

		err := am.service("", "").DeleteOrders(context.Background(), []string{"A"})
		assert.NoError(t, err)
	})

	t.Run("refund_request_cleanup_is_best_effort", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.passThroughTx()

		am.tx.EXPECT().GetOrderForUpdate(gomock.Any(), "A").
			Return(&models.Order{Number: "A", Status: models.OrderStatusPending}, nil)
		am.tx.EXPECT().ReleaseCards(gomock.Any(), "A").Return(nil)
		am.tx.EXPECT().DeleteRefundRequests(gomock.Any(), "A").Return(errors.New("relation does not exist"))
		am.tx.EXPECT().DeleteOrder(gomock.Any(), "A").Return(nil)
		am.notifier.EXPECT().Invalidate(AdminOrderListView)

		err := am.service("", "").DeleteOrders(context.Background(), []string{"A"})
		assert.NoError(t, err)
	})
}

func TestAdminOrderService_VerifyOrderRefundStatus(t *testing.T) {
	t.Run("missing_credentials", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)

		_, err := am.service("", "").VerifyOrderRefundStatus(context.Background(), "O-1")
		assert.ErrorIs(t, err, models.ErrGatewayNotConfigured)
	})

	t.Run("refunded_updates_local_status", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(&epay.OrderStatus{Code: 1, Status: intPtr(0)}, nil)
		am.repo.EXPECT().SetOrderStatus(gomock.Any(), "O-1", models.OrderStatusRefunded).Return(nil)
		am.notifier.EXPECT().Invalidate(AdminOrderListView)

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)

		want := &models.RefundQueryResult{Success: true, Status: intPtr(0), Msg: "Refunded (Verified)"}
		if diff := cmp.Diff(want, result); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("paid_makes_no_local_mutation", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(&epay.OrderStatus{Code: 1, Status: intPtr(1)}, nil)

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)

		want := &models.RefundQueryResult{Success: true, Status: intPtr(1), Msg: "Paid (Not Refunded)"}
		if diff := cmp.Diff(want, result); diff != "" {
			t.Errorf("result mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("other_status_is_embedded", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(&epay.OrderStatus{Code: 1, Status: intPtr(5)}, nil)

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Gateway status: 5", result.Msg)
	})

	t.Run("gateway_rejection_surfaces_its_message", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(&epay.OrderStatus{Code: 0, Msg: "bad pid"}, nil)

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "bad pid", result.Error)
	})

	t.Run("gateway_rejection_without_message", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(&epay.OrderStatus{Code: 0}, nil)

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)
		assert.Equal(t, "Query failed", result.Error)
	})

	t.Run("transport_failure_is_reported_not_raised", func(t *testing.T) {
		am := newAdminMocks(t)
		am.auth.EXPECT().Authorize(gomock.Any()).Return(nil)
		am.gateway.EXPECT().QueryOrder(gomock.Any(), "O-1").
			Return(nil, errors.New("dial tcp: connection refused"))

		result, err := am.service("pid", "key").VerifyOrderRefundStatus(context.Background(), "O-1")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "dial tcp: connection refused", result.Error)
	})
}
