package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	domainRepo "github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository(db *gorm.DB) domainRepo.OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	for i := range offer.Items {
		offer.Items[i].Position = i
	}
	return translateWriteError(r.db.WithContext(ctx).Create(offer).Error)
}

func (r *offerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offer entity.Offer
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		First(&offer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &offer, err
}

func (r *offerRepository) Update(ctx context.Context, offer *entity.Offer, replaceItems bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(offer).Error; err != nil {
			return err
		}
		if !replaceItems {
			return nil
		}
		if err := tx.Where("offer_id = ?", offer.ID).Delete(&entity.OfferItem{}).Error; err != nil {
			return err
		}
		for i := range offer.Items {
			offer.Items[i].ID = uuid.Nil
			offer.Items[i].OfferID = offer.ID
			offer.Items[i].Position = i
		}
		if len(offer.Items) == 0 {
			return nil
		}
		return tx.Create(&offer.Items).Error
	})
	return translateWriteError(err)
}

func (r *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translateDeleteError(r.db.WithContext(ctx).Delete(&entity.Offer{}, "id = ?", id).Error)
}

func (r *offerRepository) List(ctx context.Context, filter domainRepo.OfferFilter) ([]entity.Offer, error) {
	var offers []entity.Offer

	query := r.db.WithContext(ctx).Model(&entity.Offer{}).Preload("Items", orderedItems)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.OpportunityID != nil {
		query = query.Where("opportunity_id = ?", *filter.OpportunityID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	err := query.Scopes(newestFirst).Find(&offers).Error
	return offers, err
}

func (r *offerRepository) GetNextNumber(ctx context.Context, year int) (int, error) {
	return nextSequence(ctx, r.db, &entity.Offer{}, "offer_number", utils.DocumentPrefix(entity.OfferNumberPrefix, year))
}
