package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

// OrderService handles order-related operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	offerRepo    repository.OfferRepository
	customerRepo repository.CustomerRepository
	reconciler   *PaymentStatusReconciler
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	offerRepo repository.OfferRepository,
	customerRepo repository.CustomerRepository,
	reconciler *PaymentStatusReconciler,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		offerRepo:    offerRepo,
		customerRepo: customerRepo,
		reconciler:   reconciler,
	}
}

// CreateOrderInput represents the input for creating an order
type CreateOrderInput struct {
	OrderNumber     string
	CustomerID      uuid.UUID
	OfferID         *uuid.UUID
	Items           []LineItemInput
	OrderDate       *time.Time
	DeliveryDate    *time.Time
	ShippingAddress string
	BillingAddress  string
	Notes           string
	Status          enum.OrderStatus
}

// CreateOrder creates a new order. When OfferID is set and no items are
// given, the offer's items are copied. Empty addresses are filled from the
// customer record. A new order starts with payment status pending.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	status := input.Status
	if status == "" {
		status = enum.OrderStatusNew
	}
	if !status.IsValid() {
		return nil, apperror.NewFieldError("status", "is not a valid order status")
	}

	customer, err := lookupCustomer(ctx, s.customerRepo, input.CustomerID)
	if err != nil {
		return nil, err
	}

	itemInputs := input.Items
	if input.OfferID != nil {
		offer, err := s.lookupOffer(ctx, *input.OfferID)
		if err != nil {
			return nil, err
		}
		if offer.CustomerID != customer.ID {
			return nil, apperror.NewFieldError("offerId", "belongs to a different customer")
		}
		if len(itemInputs) == 0 {
			itemInputs = itemInputsFrom(offer.LineItems())
		}
	}

	items, total, err := buildLineItems(itemInputs)
	if err != nil {
		return nil, err
	}

	orderNumber := input.OrderNumber
	if orderNumber == "" {
		if orderNumber, err = s.nextOrderNumber(ctx); err != nil {
			return nil, err
		}
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &entity.Order{
		OrderNumber:     orderNumber,
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		OfferID:         input.OfferID,
		TotalAmount:     total,
		OrderDate:       orderDate,
		DeliveryDate:    input.DeliveryDate,
		ShippingAddress: orDefault(input.ShippingAddress, customer.FullAddress()),
		BillingAddress:  orDefault(input.BillingAddress, customer.FullAddress()),
		Notes:           input.Notes,
		Status:          status,
		PaymentStatus:   enum.OrderPaymentPending,
		Items:           toOrderItems(items),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ConvertOfferInput holds the optional order fields supplied when converting an offer
type ConvertOfferInput struct {
	OfferID         uuid.UUID
	OrderDate       *time.Time
	DeliveryDate    *time.Time
	ShippingAddress string
	BillingAddress  string
	Notes           string
}

// CreateOrderFromOffer converts an accepted offer into a new order carrying
// the offer's customer, items and total. An offer converts at most once.
func (s *OrderService) CreateOrderFromOffer(ctx context.Context, input *ConvertOfferInput) (*entity.Order, error) {
	offer, err := s.lookupOffer(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}
	if offer.Status != enum.OfferStatusAccepted {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Only accepted offers can be converted to orders")
	}

	existing, err := s.orderRepo.List(ctx, repository.OrderFilter{OfferID: &offer.ID})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperror.NewConflictError("Offer has already been converted to order " + existing[0].OrderNumber)
	}

	return s.CreateOrder(ctx, &CreateOrderInput{
		CustomerID:      offer.CustomerID,
		OfferID:         &offer.ID,
		OrderDate:       input.OrderDate,
		DeliveryDate:    input.DeliveryDate,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		Notes:           input.Notes,
	})
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders matching filter, newest first
func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	return s.orderRepo.List(ctx, filter)
}

// UpdateOrderInput represents the input for updating an order. Nil fields
// are left unchanged; a non-nil Items replaces every line item.
type UpdateOrderInput struct {
	ID              uuid.UUID
	Items           *[]LineItemInput
	OrderDate       *time.Time
	DeliveryDate    *time.Time
	ShippingAddress *string
	BillingAddress  *string
	Notes           *string
	Status          *enum.OrderStatus
}

// UpdateOrder applies a partial update to an order. Replacing the items
// changes the total, so the payment status is reconciled afterwards.
func (s *OrderService) UpdateOrder(ctx context.Context, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewFieldError("status", "is not a valid order status")
		}
		order.Status = *input.Status
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = input.DeliveryDate
	}
	setString(&order.ShippingAddress, input.ShippingAddress)
	setString(&order.BillingAddress, input.BillingAddress)
	setString(&order.Notes, input.Notes)

	replaceItems := input.Items != nil
	if replaceItems {
		items, total, err := buildLineItems(*input.Items)
		if err != nil {
			return nil, err
		}
		order.Items = toOrderItems(items)
		order.TotalAmount = total
	}

	if err := s.orderRepo.Update(ctx, order, replaceItems); err != nil {
		return nil, err
	}

	if replaceItems {
		if status, ok := s.reconciler.Reconcile(ctx, order.ID); ok {
			order.PaymentStatus = status
		}
	}

	return order, nil
}

// DeleteOrder deletes an order and its items. Orders with payments cannot be deleted.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.orderRepo.Delete(ctx, id)
}

// GetOrderBalance reports the total, the completed amount paid and what remains.
func (s *OrderService) GetOrderBalance(ctx context.Context, id uuid.UUID) (*entity.OrderBalance, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	paid, err := s.reconciler.PaidAmount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &entity.OrderBalance{
		OrderID:         order.ID,
		TotalAmount:     order.TotalAmount,
		PaidAmount:      paid,
		RemainingAmount: order.TotalAmount.SubFloor(paid),
		PaymentStatus:   DerivePaymentStatus(paid, order.TotalAmount),
	}, nil
}

func (s *OrderService) lookupOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperror.NewNotFoundError("Offer")
	}
	return offer, nil
}

func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	nextNum, err := s.orderRepo.GetNextNumber(ctx, year)
	if err != nil {
		return "", err
	}
	return utils.DocumentNumber(entity.OrderNumberPrefix, year, nextNum), nil
}

func itemInputsFrom(items []entity.LineItem) []LineItemInput {
	inputs := make([]LineItemInput, len(items))
	for i, item := range items {
		tax := item.Tax
		inputs[i] = LineItemInput{
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Tax:         &tax,
		}
	}
	return inputs
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
