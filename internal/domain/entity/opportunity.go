package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
	"gorm.io/gorm"
)

// Opportunity is a potential sale tracked through the pipeline
type Opportunity struct {
	ID                uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName      string                 `gorm:"size:255" json:"customerName"`
	Title             string                 `gorm:"size:255;not null" json:"title"`
	Description       string                 `gorm:"type:text" json:"description"`
	Value             money.Cents            `gorm:"not null" json:"value"`
	Probability       int                    `gorm:"not null" json:"probability"`
	ExpectedCloseDate *time.Time             `json:"expectedCloseDate,omitempty"`
	AssignedTo        string                 `gorm:"size:255" json:"assignedTo"`
	Source            string                 `gorm:"size:100" json:"source"`
	Products          []string               `gorm:"type:text;serializer:json" json:"products"`
	Priority          enum.Priority          `gorm:"size:20;not null" json:"priority"`
	Notes             string                 `gorm:"type:text" json:"notes"`
	Status            enum.OpportunityStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// BeforeCreate generates a UUID before creating a new opportunity
func (o *Opportunity) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Opportunity model
func (Opportunity) TableName() string {
	return "opportunities"
}

func (o Opportunity) GetID() uuid.UUID { return o.ID }
