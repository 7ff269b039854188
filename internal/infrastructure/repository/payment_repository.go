package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/utils"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return translateWriteError(r.db.WithContext(ctx).Create(payment).Error)
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return translateWriteError(r.db.WithContext(ctx).Save(payment).Error)
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateDeleteError(r.db.WithContext(ctx).Delete(&entity.Payment{}, "id = ?", id).Error)
}

func (r *paymentRepository) List(ctx context.Context, filter domainRepo.PaymentFilter) ([]entity.Payment, error) {
	var payments []entity.Payment

	query := r.db.WithContext(ctx).Model(&entity.Payment{})
	if filter.OrderID != nil {
		query = query.Where("order_id = ?", *filter.OrderID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Method != nil {
		query = query.Where("method = ?", *filter.Method)
	}

	err := query.Scopes(newestFirst).Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) GetNextNumber(ctx context.Context, year int) (int, error) {
	return nextSequence(ctx, r.db, &entity.Payment{}, "payment_number", utils.DocumentPrefix(entity.PaymentNumberPrefix, year))
}
