package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// OrderPaymentStatusStore is the part of the order repository used by reconciliation
type OrderPaymentStatusStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.OrderPaymentStatus) error
}

// PaymentLister is the part of the payment repository used by reconciliation
type PaymentLister interface {
	List(ctx context.Context, filter repository.PaymentFilter) ([]entity.Payment, error)
}

// DerivePaymentStatus maps the completed amount paid against an order total
// to the order's payment status: nothing paid is pending, less than the total
// is partial, the total or more is paid.
func DerivePaymentStatus(paid, total money.Cents) enum.OrderPaymentStatus {
	switch {
	case paid <= 0:
		return enum.OrderPaymentPending
	case paid < total:
		return enum.OrderPaymentPartial
	default:
		return enum.OrderPaymentPaid
	}
}

// PaymentStatusReconciler recomputes an order's payment status from its
// completed payments and saves it. It runs after the payment write it
// follows, so the two writes are not atomic.
type PaymentStatusReconciler struct {
	orders   OrderPaymentStatusStore
	payments PaymentLister
	logger   *slog.Logger
}

// NewPaymentStatusReconciler creates a reconciler. A nil logger uses slog.Default().
func NewPaymentStatusReconciler(orders OrderPaymentStatusStore, payments PaymentLister, logger *slog.Logger) *PaymentStatusReconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentStatusReconciler{orders: orders, payments: payments, logger: logger}
}

// PaidAmount sums the completed payments recorded against orderID.
func (r *PaymentStatusReconciler) PaidAmount(ctx context.Context, orderID uuid.UUID) (money.Cents, error) {
	completed := enum.PaymentStatusCompleted
	payments, err := r.payments.List(ctx, repository.PaymentFilter{OrderID: &orderID, Status: &completed})
	if err != nil {
		return 0, err
	}

	var paid money.Cents
	for _, p := range payments {
		paid += p.Amount
	}
	return paid, nil
}

// Reconcile recomputes and stores the payment status of orderID. It reports
// false when the order could not be read or written; those failures are
// logged and never retried, leaving the stored status stale.
func (r *PaymentStatusReconciler) Reconcile(ctx context.Context, orderID uuid.UUID) (enum.OrderPaymentStatus, bool) {
	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		r.logger.WarnContext(ctx, "payment status reconciliation skipped: order lookup failed",
			"order_id", orderID, "error", err)
		return "", false
	}
	if order == nil {
		r.logger.WarnContext(ctx, "payment status reconciliation skipped: order not found", "order_id", orderID)
		return "", false
	}

	paid, err := r.PaidAmount(ctx, orderID)
	if err != nil {
		r.logger.WarnContext(ctx, "payment status reconciliation skipped: payment lookup failed",
			"order_id", orderID, "error", err)
		return "", false
	}

	status := DerivePaymentStatus(paid, order.TotalAmount)
	if status == order.PaymentStatus {
		return status, true
	}

	if err := r.orders.UpdatePaymentStatus(ctx, orderID, status); err != nil {
		r.logger.ErrorContext(ctx, "failed to update order payment status",
			"order_id", orderID, "payment_status", status, "error", err)
		return "", false
	}

	r.logger.InfoContext(ctx, "order payment status updated",
		"order_id", orderID, "from", order.PaymentStatus, "to", status,
		"paid", paid.String(), "total", order.TotalAmount.String())
	return status, true
}
