package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// CustomerFilter holds the equality filters accepted when listing customers
type CustomerFilter struct {
	Status *enum.CustomerStatus
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID returns nil, nil when the customer does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete returns apperror.ErrHasDependents when other records reference the customer
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter CustomerFilter) ([]entity.Customer, error)
}
