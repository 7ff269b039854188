package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

// OfferService handles offer-related operations
type OfferService struct {
	offerRepo       repository.OfferRepository
	customerRepo    repository.CustomerRepository
	opportunityRepo repository.OpportunityRepository
}

// NewOfferService creates a new offer service
func NewOfferService(
	offerRepo repository.OfferRepository,
	customerRepo repository.CustomerRepository,
	opportunityRepo repository.OpportunityRepository,
) *OfferService {
	return &OfferService{
		offerRepo:       offerRepo,
		customerRepo:    customerRepo,
		opportunityRepo: opportunityRepo,
	}
}

// CreateOfferInput represents the input for creating an offer
type CreateOfferInput struct {
	OfferNumber   string
	CustomerID    uuid.UUID
	OpportunityID *uuid.UUID
	Title         string
	Description   string
	Items         []LineItemInput
	ValidUntil    *time.Time
	Terms         string
	Notes         string
	Status        enum.OfferStatus
}

// CreateOffer creates a new offer, pricing its items and generating an
// offer number when none is given.
func (s *OfferService) CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.Offer, error) {
	status := input.Status
	if status == "" {
		status = enum.OfferStatusDraft
	}
	if !status.IsValid() {
		return nil, apperror.NewFieldError("status", "is not a valid offer status")
	}

	items, total, err := buildLineItems(input.Items)
	if err != nil {
		return nil, err
	}

	customer, err := lookupCustomer(ctx, s.customerRepo, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if input.OpportunityID != nil {
		if err := s.checkOpportunity(ctx, *input.OpportunityID, customer.ID); err != nil {
			return nil, err
		}
	}

	offerNumber := input.OfferNumber
	if offerNumber == "" {
		year := time.Now().Year()
		nextNum, err := s.offerRepo.GetNextNumber(ctx, year)
		if err != nil {
			return nil, err
		}
		offerNumber = utils.DocumentNumber(entity.OfferNumberPrefix, year, nextNum)
	}

	offer := &entity.Offer{
		OfferNumber:   offerNumber,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		OpportunityID: input.OpportunityID,
		Title:         input.Title,
		Description:   input.Description,
		TotalAmount:   total,
		ValidUntil:    input.ValidUntil,
		Terms:         input.Terms,
		Notes:         input.Notes,
		Status:        status,
		Items:         toOfferItems(items),
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}

	return offer, nil
}

// GetOffer retrieves an offer with its items
func (s *OfferService) GetOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperror.NewNotFoundError("Offer")
	}
	return offer, nil
}

// ListOffers lists offers matching filter, newest first
func (s *OfferService) ListOffers(ctx context.Context, filter repository.OfferFilter) ([]entity.Offer, error) {
	return s.offerRepo.List(ctx, filter)
}

// UpdateOfferInput represents the input for updating an offer. Nil fields
// are left unchanged; a non-nil Items replaces every line item.
type UpdateOfferInput struct {
	ID            uuid.UUID
	CustomerID    *uuid.UUID
	OpportunityID *uuid.UUID
	Title         *string
	Description   *string
	Items         *[]LineItemInput
	ValidUntil    *time.Time
	Terms         *string
	Notes         *string
	Status        *enum.OfferStatus
}

// UpdateOffer applies a partial update to an offer
func (s *OfferService) UpdateOffer(ctx context.Context, input *UpdateOfferInput) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, apperror.NewNotFoundError("Offer")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewFieldError("status", "is not a valid offer status")
		}
		offer.Status = *input.Status
	}
	if input.CustomerID != nil && *input.CustomerID != offer.CustomerID {
		customer, err := lookupCustomer(ctx, s.customerRepo, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		offer.CustomerID = customer.ID
		offer.CustomerName = customer.Name
	}
	if input.OpportunityID != nil {
		offer.OpportunityID = input.OpportunityID
	}
	if offer.OpportunityID != nil && (input.OpportunityID != nil || input.CustomerID != nil) {
		if err := s.checkOpportunity(ctx, *offer.OpportunityID, offer.CustomerID); err != nil {
			return nil, err
		}
	}
	if input.Title != nil {
		if *input.Title == "" {
			return nil, apperror.NewFieldError("title", "must not be empty")
		}
		offer.Title = *input.Title
	}
	setString(&offer.Description, input.Description)
	setString(&offer.Terms, input.Terms)
	setString(&offer.Notes, input.Notes)
	if input.ValidUntil != nil {
		offer.ValidUntil = input.ValidUntil
	}

	replaceItems := input.Items != nil
	if replaceItems {
		items, total, err := buildLineItems(*input.Items)
		if err != nil {
			return nil, err
		}
		offer.Items = toOfferItems(items)
		offer.TotalAmount = total
	}

	if err := s.offerRepo.Update(ctx, offer, replaceItems); err != nil {
		return nil, err
	}

	return offer, nil
}

// DeleteOffer deletes an offer and its items. Offers converted to orders
// cannot be deleted.
func (s *OfferService) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offer == nil {
		return apperror.NewNotFoundError("Offer")
	}

	return s.offerRepo.Delete(ctx, id)
}

func (s *OfferService) checkOpportunity(ctx context.Context, opportunityID, customerID uuid.UUID) error {
	opportunity, err := s.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		return err
	}
	if opportunity == nil {
		return apperror.NewNotFoundError("Opportunity")
	}
	if opportunity.CustomerID != customerID {
		return apperror.NewFieldError("opportunityId", "belongs to a different customer")
	}
	return nil
}
