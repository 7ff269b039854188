package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
	"gorm.io/gorm"
)

// OrderNumberPrefix starts every generated order number, e.g. ORD-2026-001
const OrderNumberPrefix = "ORD"

// Order represents a confirmed sales order. PaymentStatus is derived from
// the order's completed payments and is only written by reconciliation.
type Order struct {
	ID              uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber     string                  `gorm:"size:50;uniqueIndex;not null" json:"orderNumber"`
	CustomerID      uuid.UUID               `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName    string                  `gorm:"size:255" json:"customerName"`
	OfferID         *uuid.UUID              `gorm:"type:uuid;index" json:"offerId,omitempty"`
	TotalAmount     money.Cents             `gorm:"not null" json:"totalAmount"`
	OrderDate       time.Time               `gorm:"not null" json:"orderDate"`
	DeliveryDate    *time.Time              `json:"deliveryDate,omitempty"`
	ShippingAddress string                  `gorm:"type:text" json:"shippingAddress"`
	BillingAddress  string                  `gorm:"type:text" json:"billingAddress"`
	Notes           string                  `gorm:"type:text" json:"notes"`
	Status          enum.OrderStatus        `gorm:"size:20;not null;index" json:"status"`
	PaymentStatus   enum.OrderPaymentStatus `gorm:"size:20;not null;index" json:"paymentStatus"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`

	// Relationships
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Customer *Customer   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Offer    *Offer      `gorm:"foreignKey:OfferID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

func (o Order) GetID() uuid.UUID { return o.ID }

// LineItems returns the plain line items in position order
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.Items))
	for i := range o.Items {
		items[i] = o.Items[i].LineItem
	}
	return items
}

// OrderBalance is the payment position of an order
type OrderBalance struct {
	OrderID         uuid.UUID               `json:"orderId"`
	TotalAmount     money.Cents             `json:"totalAmount"`
	PaidAmount      money.Cents             `json:"paidAmount"`
	RemainingAmount money.Cents             `json:"remainingAmount"`
	PaymentStatus   enum.OrderPaymentStatus `json:"paymentStatus"`
}
