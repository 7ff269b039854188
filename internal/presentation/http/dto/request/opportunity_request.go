package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// CreateOpportunityRequest represents an opportunity creation request
type CreateOpportunityRequest struct {
	CustomerID        uuid.UUID              `json:"customerId" binding:"required"`
	Title             string                 `json:"title" binding:"required,max=255"`
	Description       string                 `json:"description"`
	Value             money.Cents            `json:"value" binding:"min=0"`
	Probability       int                    `json:"probability" binding:"min=0,max=100"`
	ExpectedCloseDate *time.Time             `json:"expectedCloseDate"`
	AssignedTo        string                 `json:"assignedTo" binding:"max=255"`
	Source            string                 `json:"source" binding:"max=100"`
	Products          []string               `json:"products" binding:"dive,max=255"`
	Priority          enum.Priority          `json:"priority"`
	Notes             string                 `json:"notes"`
	Status            enum.OpportunityStatus `json:"status"`
}

// UpdateOpportunityRequest represents a partial opportunity update
type UpdateOpportunityRequest struct {
	CustomerID        *uuid.UUID              `json:"customerId"`
	Title             *string                 `json:"title" binding:"omitempty,min=1,max=255"`
	Description       *string                 `json:"description"`
	Value             *money.Cents            `json:"value" binding:"omitempty,min=0"`
	Probability       *int                    `json:"probability" binding:"omitempty,min=0,max=100"`
	ExpectedCloseDate *time.Time              `json:"expectedCloseDate"`
	AssignedTo        *string                 `json:"assignedTo" binding:"omitempty,max=255"`
	Source            *string                 `json:"source" binding:"omitempty,max=100"`
	Products          *[]string               `json:"products" binding:"omitempty,dive,max=255"`
	Priority          *enum.Priority          `json:"priority"`
	Notes             *string                 `json:"notes"`
	Status            *enum.OpportunityStatus `json:"status"`
}

// OpportunityFilterRequest represents opportunity list query parameters
type OpportunityFilterRequest struct {
	Search     string `form:"q"`
	CustomerID string `form:"customerId"`
	Status     string `form:"status"`
	Priority   string `form:"priority"`
}
