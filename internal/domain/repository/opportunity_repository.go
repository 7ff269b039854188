package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// OpportunityFilter holds the equality filters accepted when listing opportunities
type OpportunityFilter struct {
	CustomerID *uuid.UUID
	Status     *enum.OpportunityStatus
	Priority   *enum.Priority
}

// OpportunityRepository defines the interface for opportunity data operations
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter OpportunityFilter) ([]entity.Opportunity, error)
}
