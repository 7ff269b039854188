package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// OfferFilter holds the equality filters accepted when listing offers
type OfferFilter struct {
	CustomerID    *uuid.UUID
	OpportunityID *uuid.UUID
	Status        *enum.OfferStatus
}

// OfferRepository defines the interface for offer data operations.
// Offers are always loaded with their items.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)
	// Update saves the offer header and, when replaceItems is set, swaps the
	// stored items for offer.Items in one transaction.
	Update(ctx context.Context, offer *entity.Offer, replaceItems bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter OfferFilter) ([]entity.Offer, error)
	// GetNextNumber returns the next sequence number for offers numbered in year
	GetNextNumber(ctx context.Context, year int) (int, error)
}
