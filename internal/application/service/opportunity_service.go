package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// OpportunityService handles opportunity-related operations
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
	customerRepo    repository.CustomerRepository
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(opportunityRepo repository.OpportunityRepository, customerRepo repository.CustomerRepository) *OpportunityService {
	return &OpportunityService{opportunityRepo: opportunityRepo, customerRepo: customerRepo}
}

// CreateOpportunityInput represents the create opportunity input
type CreateOpportunityInput struct {
	CustomerID        uuid.UUID
	Title             string
	Description       string
	Value             money.Cents
	Probability       int
	ExpectedCloseDate *time.Time
	AssignedTo        string
	Source            string
	Products          []string
	Priority          enum.Priority
	Notes             string
	Status            enum.OpportunityStatus
}

// CreateOpportunity creates a new opportunity for an existing customer
func (s *OpportunityService) CreateOpportunity(ctx context.Context, input *CreateOpportunityInput) (*entity.Opportunity, error) {
	opportunity := &entity.Opportunity{
		CustomerID:        input.CustomerID,
		Title:             input.Title,
		Description:       input.Description,
		Value:             input.Value,
		Probability:       input.Probability,
		ExpectedCloseDate: input.ExpectedCloseDate,
		AssignedTo:        input.AssignedTo,
		Source:            input.Source,
		Products:          normalizeProducts(input.Products),
		Priority:          input.Priority,
		Notes:             input.Notes,
		Status:            input.Status,
	}
	if opportunity.Status == "" {
		opportunity.Status = enum.OpportunityStatusNew
	}
	if opportunity.Priority == "" {
		opportunity.Priority = enum.PriorityMedium
	}
	if err := validateOpportunity(opportunity); err != nil {
		return nil, err
	}

	customer, err := lookupCustomer(ctx, s.customerRepo, input.CustomerID)
	if err != nil {
		return nil, err
	}
	opportunity.CustomerName = customer.Name

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, err
	}

	return opportunity, nil
}

// GetOpportunity retrieves an opportunity by ID
func (s *OpportunityService) GetOpportunity(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}
	return opportunity, nil
}

// ListOpportunities lists opportunities matching filter, newest first
func (s *OpportunityService) ListOpportunities(ctx context.Context, filter repository.OpportunityFilter) ([]entity.Opportunity, error) {
	return s.opportunityRepo.List(ctx, filter)
}

// UpdateOpportunityInput represents the update opportunity input. Nil fields are left unchanged.
type UpdateOpportunityInput struct {
	ID                uuid.UUID
	CustomerID        *uuid.UUID
	Title             *string
	Description       *string
	Value             *money.Cents
	Probability       *int
	ExpectedCloseDate *time.Time
	AssignedTo        *string
	Source            *string
	Products          *[]string
	Priority          *enum.Priority
	Notes             *string
	Status            *enum.OpportunityStatus
}

// UpdateOpportunity applies a partial update to an opportunity
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, input *UpdateOpportunityInput) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}

	if input.CustomerID != nil && *input.CustomerID != opportunity.CustomerID {
		customer, err := lookupCustomer(ctx, s.customerRepo, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		opportunity.CustomerID = customer.ID
		opportunity.CustomerName = customer.Name
	}
	setString(&opportunity.Title, input.Title)
	setString(&opportunity.Description, input.Description)
	setString(&opportunity.AssignedTo, input.AssignedTo)
	setString(&opportunity.Source, input.Source)
	setString(&opportunity.Notes, input.Notes)
	if input.Products != nil {
		opportunity.Products = normalizeProducts(*input.Products)
	}
	if input.Value != nil {
		opportunity.Value = *input.Value
	}
	if input.Probability != nil {
		opportunity.Probability = *input.Probability
	}
	if input.ExpectedCloseDate != nil {
		opportunity.ExpectedCloseDate = input.ExpectedCloseDate
	}
	if input.Priority != nil {
		opportunity.Priority = *input.Priority
	}
	if input.Status != nil {
		opportunity.Status = *input.Status
	}
	if err := validateOpportunity(opportunity); err != nil {
		return nil, err
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	return opportunity, nil
}

// DeleteOpportunity deletes an opportunity that no offer references
func (s *OpportunityService) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if opportunity == nil {
		return apperror.NewNotFoundError("Opportunity")
	}

	return s.opportunityRepo.Delete(ctx, id)
}

func validateOpportunity(o *entity.Opportunity) error {
	var fieldErrors []apperror.FieldError
	if o.Title == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "title", Message: "is required"})
	}
	if o.Probability < 0 || o.Probability > 100 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "probability", Message: "must be between 0 and 100"})
	}
	if o.Value < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "value", Message: "must not be negative"})
	}
	if !o.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "is not a valid opportunity status"})
	}
	if !o.Priority.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "priority", Message: "must be one of low, medium, high"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// normalizeProducts trims product names and drops blank entries
func normalizeProducts(products []string) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
