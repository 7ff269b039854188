package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// PaymentFilter holds the equality filters accepted when listing payments
type PaymentFilter struct {
	OrderID    *uuid.UUID
	CustomerID *uuid.UUID
	Status     *enum.PaymentStatus
	Method     *enum.PaymentMethod
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter PaymentFilter) ([]entity.Payment, error)
	GetNextNumber(ctx context.Context, year int) (int, error)
}
