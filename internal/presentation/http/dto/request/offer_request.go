package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// LineItemRequest is one line of an offer or order. Tax defaults to 18 when omitted.
type LineItemRequest struct {
	ProductName string      `json:"productName" binding:"required,max=255"`
	Description string      `json:"description"`
	Quantity    float64     `json:"quantity" binding:"gt=0"`
	UnitPrice   money.Cents `json:"unitPrice" binding:"min=0"`
	Discount    float64     `json:"discount" binding:"min=0,max=100"`
	Tax         *float64    `json:"tax" binding:"omitempty,min=0,max=100"`
}

// CreateOfferRequest represents an offer creation request
type CreateOfferRequest struct {
	OfferNumber   string            `json:"offerNumber" binding:"max=50"`
	CustomerID    uuid.UUID         `json:"customerId" binding:"required"`
	OpportunityID *uuid.UUID        `json:"opportunityId"`
	Title         string            `json:"title" binding:"required,max=255"`
	Description   string            `json:"description"`
	Items         []LineItemRequest `json:"items" binding:"dive"`
	ValidUntil    *time.Time        `json:"validUntil"`
	Terms         string            `json:"terms"`
	Notes         string            `json:"notes"`
	Status        enum.OfferStatus  `json:"status"`
}

// UpdateOfferRequest represents a partial offer update. A present items
// list replaces every line item.
type UpdateOfferRequest struct {
	CustomerID    *uuid.UUID         `json:"customerId"`
	OpportunityID *uuid.UUID         `json:"opportunityId"`
	Title         *string            `json:"title" binding:"omitempty,min=1,max=255"`
	Description   *string            `json:"description"`
	Items         *[]LineItemRequest `json:"items" binding:"omitempty,dive"`
	ValidUntil    *time.Time         `json:"validUntil"`
	Terms         *string            `json:"terms"`
	Notes         *string            `json:"notes"`
	Status        *enum.OfferStatus  `json:"status"`
}

// OfferFilterRequest represents offer list query parameters
type OfferFilterRequest struct {
	Search        string `form:"q"`
	CustomerID    string `form:"customerId"`
	OpportunityID string `form:"opportunityId"`
	Status        string `form:"status"`
}
