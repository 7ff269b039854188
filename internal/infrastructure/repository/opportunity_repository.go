package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *gorm.DB) domainRepo.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return translateWriteError(r.db.WithContext(ctx).Create(opportunity).Error)
}

func (r *opportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := r.db.WithContext(ctx).First(&opportunity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	return translateWriteError(r.db.WithContext(ctx).Save(opportunity).Error)
}

func (r *opportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateDeleteError(r.db.WithContext(ctx).Delete(&entity.Opportunity{}, "id = ?", id).Error)
}

func (r *opportunityRepository) List(ctx context.Context, filter domainRepo.OpportunityFilter) ([]entity.Opportunity, error) {
	var opportunities []entity.Opportunity

	query := r.db.WithContext(ctx).Model(&entity.Opportunity{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	err := query.Scopes(newestFirst).Find(&opportunities).Error
	return opportunities, err
}
