package repository

import (
	"context"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// PipelineStageResult aggregates opportunities sharing a status
type PipelineStageResult struct {
	Status     enum.OpportunityStatus
	Count      int64
	TotalValue money.Cents
}

// AnalyticsRepository defines aggregation queries used by the dashboard
type AnalyticsRepository interface {
	CountCustomers(ctx context.Context) (int64, error)
	// CountOpenOpportunities counts opportunities that are neither won nor lost
	CountOpenOpportunities(ctx context.Context) (int64, error)
	// CountPendingOffers counts draft and sent offers
	CountPendingOffers(ctx context.Context) (int64, error)
	// CountActiveOrders counts orders that are neither delivered nor cancelled
	CountActiveOrders(ctx context.Context) (int64, error)
	GetPipelineStats(ctx context.Context) ([]PipelineStageResult, error)

	GetRecentCustomers(ctx context.Context, limit int) ([]entity.Customer, error)
	GetRecentOpportunities(ctx context.Context, limit int) ([]entity.Opportunity, error)
	GetRecentOffers(ctx context.Context, limit int) ([]entity.Offer, error)
	GetRecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
	GetRecentPayments(ctx context.Context, limit int) ([]entity.Payment, error)
}
