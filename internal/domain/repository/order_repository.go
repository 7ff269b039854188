package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// OrderFilter holds the equality filters accepted when listing orders
type OrderFilter struct {
	CustomerID    *uuid.UUID
	OfferID       *uuid.UUID
	Status        *enum.OrderStatus
	PaymentStatus *enum.OrderPaymentStatus
}

// OrderRepository defines the interface for order data operations.
// Orders are always loaded with their items.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order, replaceItems bool) error
	// UpdatePaymentStatus writes only the derived payment status column
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.OrderPaymentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter OrderFilter) ([]entity.Order, error)
	GetNextNumber(ctx context.Context, year int) (int, error)
}
