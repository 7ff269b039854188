package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

// PaymentService handles payment-related operations. Every create, update
// and delete is followed by a reconciliation of the owning order's payment
// status; a failed reconciliation never fails the payment write.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	reconciler  *PaymentStatusReconciler
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	reconciler *PaymentStatusReconciler,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		reconciler:  reconciler,
	}
}

// CreatePaymentInput represents the input for recording a payment
type CreatePaymentInput struct {
	PaymentNumber string
	OrderID       uuid.UUID
	Amount        money.Cents
	PaymentDate   *time.Time
	Method        enum.PaymentMethod
	Status        enum.PaymentStatus
	ReceiptNumber string
	TransactionID string
	BankDetails   string
	Notes         string
}

// CreatePayment records a payment against an existing order. The customer
// is taken from the order. Status defaults to pending.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	payment := &entity.Payment{
		PaymentNumber: input.PaymentNumber,
		OrderID:       input.OrderID,
		Amount:        input.Amount,
		Method:        input.Method,
		Status:        input.Status,
		ReceiptNumber: input.ReceiptNumber,
		TransactionID: input.TransactionID,
		BankDetails:   input.BankDetails,
		Notes:         input.Notes,
		PaymentDate:   time.Now().UTC(),
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if payment.Status == "" {
		payment.Status = enum.PaymentStatusPending
	}
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	order, err := s.lookupOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	attachOrder(payment, order)

	if payment.PaymentNumber == "" {
		year := time.Now().Year()
		nextNum, err := s.paymentRepo.GetNextNumber(ctx, year)
		if err != nil {
			return nil, err
		}
		payment.PaymentNumber = utils.DocumentNumber(entity.PaymentNumberPrefix, year, nextNum)
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.reconciler.Reconcile(ctx, payment.OrderID)
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments matching filter, newest first
func (s *PaymentService) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]entity.Payment, error) {
	return s.paymentRepo.List(ctx, filter)
}

// UpdatePaymentInput represents the input for updating a payment. Nil fields are left unchanged.
type UpdatePaymentInput struct {
	ID            uuid.UUID
	OrderID       *uuid.UUID
	Amount        *money.Cents
	PaymentDate   *time.Time
	Method        *enum.PaymentMethod
	Status        *enum.PaymentStatus
	ReceiptNumber *string
	TransactionID *string
	BankDetails   *string
	Notes         *string
}

// UpdatePayment applies a partial update to a payment. Moving a payment to
// another order reconciles both the previous and the new order.
func (s *PaymentService) UpdatePayment(ctx context.Context, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	previousOrderID := payment.OrderID
	if input.OrderID != nil && *input.OrderID != payment.OrderID {
		order, err := s.lookupOrder(ctx, *input.OrderID)
		if err != nil {
			return nil, err
		}
		attachOrder(payment, order)
	}
	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if input.Method != nil {
		payment.Method = *input.Method
	}
	if input.Status != nil {
		payment.Status = *input.Status
	}
	setString(&payment.ReceiptNumber, input.ReceiptNumber)
	setString(&payment.TransactionID, input.TransactionID)
	setString(&payment.BankDetails, input.BankDetails)
	setString(&payment.Notes, input.Notes)
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.reconciler.Reconcile(ctx, payment.OrderID)
	if previousOrderID != payment.OrderID {
		s.reconciler.Reconcile(ctx, previousOrderID)
	}
	return payment, nil
}

// DeletePayment deletes a payment and reconciles its order
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.reconciler.Reconcile(ctx, payment.OrderID)
	return nil
}

func (s *PaymentService) lookupOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

func attachOrder(payment *entity.Payment, order *entity.Order) {
	payment.OrderID = order.ID
	payment.OrderNumber = order.OrderNumber
	payment.CustomerID = order.CustomerID
	payment.CustomerName = order.CustomerName
}

func validatePayment(p *entity.Payment) error {
	var fieldErrors []apperror.FieldError
	if p.Amount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "must be greater than 0"})
	}
	if !p.Method.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "method", Message: "must be one of cash, credit_card, bank_transfer, check, other"})
	}
	if !p.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "must be one of pending, completed, failed, refunded"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
