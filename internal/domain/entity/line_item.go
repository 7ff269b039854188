package entity

import (
	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/pkg/money"
	"gorm.io/gorm"
)

// LineItem is one priced line on an offer or order. Discount and Tax are
// percentages; Total is derived from the other fields.
type LineItem struct {
	ProductName string      `gorm:"size:255;not null" json:"productName"`
	Description string      `gorm:"type:text" json:"description"`
	Quantity    float64     `gorm:"not null" json:"quantity"`
	UnitPrice   money.Cents `gorm:"not null" json:"unitPrice"`
	Discount    float64     `gorm:"not null" json:"discount"`
	Tax         float64     `gorm:"not null" json:"tax"`
	Total       money.Cents `gorm:"not null" json:"total"`
	Position    int         `gorm:"not null" json:"-"`
}

// OfferItem is a line item belonging to an offer
type OfferItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OfferID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LineItem
}

func (i *OfferItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OfferItem) TableName() string {
	return "offer_items"
}

// OrderItem is a line item belonging to an order
type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	LineItem
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OrderItem) TableName() string {
	return "order_items"
}
