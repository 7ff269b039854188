package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return translateWriteError(r.db.WithContext(ctx).Create(customer).Error)
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return translateWriteError(r.db.WithContext(ctx).Save(customer).Error)
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateDeleteError(r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error)
}

func (r *customerRepository) List(ctx context.Context, filter domainRepo.CustomerFilter) ([]entity.Customer, error) {
	var customers []entity.Customer

	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	err := query.Scopes(newestFirst).Find(&customers).Error
	return customers, err
}
