package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
	"gorm.io/gorm"
)

// OfferNumberPrefix starts every generated offer number, e.g. OFR-2026-001
const OfferNumberPrefix = "OFR"

// Offer is a priced proposal sent to a customer
type Offer struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OfferNumber   string           `gorm:"size:50;uniqueIndex;not null" json:"offerNumber"`
	CustomerID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName  string           `gorm:"size:255" json:"customerName"`
	OpportunityID *uuid.UUID       `gorm:"type:uuid;index" json:"opportunityId,omitempty"`
	Title         string           `gorm:"size:255;not null" json:"title"`
	Description   string           `gorm:"type:text" json:"description"`
	TotalAmount   money.Cents      `gorm:"not null" json:"totalAmount"`
	ValidUntil    *time.Time       `json:"validUntil,omitempty"`
	Terms         string           `gorm:"type:text" json:"terms"`
	Notes         string           `gorm:"type:text" json:"notes"`
	Status        enum.OfferStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`

	// Relationships
	Items       []OfferItem  `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"items"`
	Customer    *Customer    `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Opportunity *Opportunity `gorm:"foreignKey:OpportunityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// BeforeCreate generates a UUID before creating a new offer
func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}

func (o Offer) GetID() uuid.UUID { return o.ID }

// LineItems returns the plain line items in position order
func (o *Offer) LineItems() []LineItem {
	items := make([]LineItem, len(o.Items))
	for i := range o.Items {
		items[i] = o.Items[i].LineItem
	}
	return items
}
