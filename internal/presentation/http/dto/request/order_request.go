package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
)

// CreateOrderRequest represents an order creation request. Items may be
// omitted when offerId is set; the offer's items are copied.
type CreateOrderRequest struct {
	OrderNumber     string            `json:"orderNumber" binding:"max=50"`
	CustomerID      uuid.UUID         `json:"customerId" binding:"required"`
	OfferID         *uuid.UUID        `json:"offerId"`
	Items           []LineItemRequest `json:"items" binding:"dive"`
	OrderDate       *time.Time        `json:"orderDate"`
	DeliveryDate    *time.Time        `json:"deliveryDate"`
	ShippingAddress string            `json:"shippingAddress"`
	BillingAddress  string            `json:"billingAddress"`
	Notes           string            `json:"notes"`
	Status          enum.OrderStatus  `json:"status"`
}

// UpdateOrderRequest represents a partial order update. paymentStatus is
// derived from payments and cannot be set.
type UpdateOrderRequest struct {
	Items           *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
	OrderDate       *time.Time         `json:"orderDate"`
	DeliveryDate    *time.Time         `json:"deliveryDate"`
	ShippingAddress *string            `json:"shippingAddress"`
	BillingAddress  *string            `json:"billingAddress"`
	Notes           *string            `json:"notes"`
	Status          *enum.OrderStatus  `json:"status"`
}

// ConvertOfferRequest holds the optional order fields used when converting an offer
type ConvertOfferRequest struct {
	OrderDate       *time.Time `json:"orderDate"`
	DeliveryDate    *time.Time `json:"deliveryDate"`
	ShippingAddress string     `json:"shippingAddress"`
	BillingAddress  string     `json:"billingAddress"`
	Notes           string     `json:"notes"`
}

// OrderFilterRequest represents order list query parameters
type OrderFilterRequest struct {
	Search        string `form:"q"`
	CustomerID    string `form:"customerId"`
	OfferID       string `form:"offerId"`
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
}
