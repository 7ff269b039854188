package service

import (
	"context"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// RecentLimit is how many of the newest records of each kind the dashboard shows
const RecentLimit = 5

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardSummary represents the dashboard overview
type DashboardSummary struct {
	CustomerCount        int64                `json:"customerCount"`
	OpenOpportunityCount int64                `json:"openOpportunityCount"`
	PendingOfferCount    int64                `json:"pendingOfferCount"`
	ActiveOrderCount     int64                `json:"activeOrderCount"`
	Pipeline             []PipelineStage      `json:"pipeline"`
	RecentCustomers      []entity.Customer    `json:"recentCustomers"`
	RecentOpportunities  []entity.Opportunity `json:"recentOpportunities"`
	RecentOffers         []entity.Offer       `json:"recentOffers"`
	RecentOrders         []entity.Order       `json:"recentOrders"`
	RecentPayments       []entity.Payment     `json:"recentPayments"`
}

// PipelineStage represents opportunities grouped by status
type PipelineStage struct {
	Status     enum.OpportunityStatus `json:"status"`
	Count      int64                  `json:"count"`
	TotalValue money.Cents            `json:"totalValue"`
}

// Summary returns the dashboard overview. The pipeline lists every
// opportunity status in workflow order, including empty stages.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}
	var err error

	if summary.CustomerCount, err = s.analyticsRepo.CountCustomers(ctx); err != nil {
		return nil, err
	}
	if summary.OpenOpportunityCount, err = s.analyticsRepo.CountOpenOpportunities(ctx); err != nil {
		return nil, err
	}
	if summary.PendingOfferCount, err = s.analyticsRepo.CountPendingOffers(ctx); err != nil {
		return nil, err
	}
	if summary.ActiveOrderCount, err = s.analyticsRepo.CountActiveOrders(ctx); err != nil {
		return nil, err
	}

	stats, err := s.analyticsRepo.GetPipelineStats(ctx)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[enum.OpportunityStatus]repository.PipelineStageResult, len(stats))
	for _, st := range stats {
		byStatus[st.Status] = st
	}
	for _, status := range enum.OpportunityStatuses() {
		st := byStatus[status]
		summary.Pipeline = append(summary.Pipeline, PipelineStage{
			Status:     status,
			Count:      st.Count,
			TotalValue: st.TotalValue,
		})
	}

	if summary.RecentCustomers, err = s.analyticsRepo.GetRecentCustomers(ctx, RecentLimit); err != nil {
		return nil, err
	}
	if summary.RecentOpportunities, err = s.analyticsRepo.GetRecentOpportunities(ctx, RecentLimit); err != nil {
		return nil, err
	}
	if summary.RecentOffers, err = s.analyticsRepo.GetRecentOffers(ctx, RecentLimit); err != nil {
		return nil, err
	}
	if summary.RecentOrders, err = s.analyticsRepo.GetRecentOrders(ctx, RecentLimit); err != nil {
		return nil, err
	}
	if summary.RecentPayments, err = s.analyticsRepo.GetRecentPayments(ctx, RecentLimit); err != nil {
		return nil, err
	}

	return summary, nil
}
