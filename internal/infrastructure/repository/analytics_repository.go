package repository

import (
	"context"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountOpenOpportunities(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Opportunity{}).
		Where("status NOT IN ?", []enum.OpportunityStatus{enum.OpportunityStatusClosedWon, enum.OpportunityStatusClosedLost}).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountPendingOffers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Offer{}).
		Where("status IN ?", []enum.OfferStatus{enum.OfferStatusDraft, enum.OfferStatusSent}).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountActiveOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("status NOT IN ?", []enum.OrderStatus{enum.OrderStatusDelivered, enum.OrderStatusCancelled}).
		Count(&count).Error
	return count, err
}

func (r *analyticsRepository) GetPipelineStats(ctx context.Context) ([]domainRepo.PipelineStageResult, error) {
	var results []domainRepo.PipelineStageResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS count,
			CAST(COALESCE(SUM(value), 0) AS BIGINT) AS total_value
		FROM opportunities
		GROUP BY status
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetRecentCustomers(ctx context.Context, limit int) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).Scopes(newestFirst).Limit(limit).Find(&customers).Error
	return customers, err
}

func (r *analyticsRepository) GetRecentOpportunities(ctx context.Context, limit int) ([]entity.Opportunity, error) {
	var opportunities []entity.Opportunity
	err := r.db.WithContext(ctx).Scopes(newestFirst).Limit(limit).Find(&opportunities).Error
	return opportunities, err
}

func (r *analyticsRepository) GetRecentOffers(ctx context.Context, limit int) ([]entity.Offer, error) {
	var offers []entity.Offer
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).Scopes(newestFirst).Limit(limit).Find(&offers).Error
	return offers, err
}

func (r *analyticsRepository) GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Preload("Items", orderedItems).Scopes(newestFirst).Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *analyticsRepository) GetRecentPayments(ctx context.Context, limit int) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).Scopes(newestFirst).Limit(limit).Find(&payments).Error
	return payments, err
}
