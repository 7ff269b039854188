package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Customer represents a customer or prospect in the sales pipeline
type Customer struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name               string              `gorm:"size:255;not null" json:"name"`
	CompanyName        string              `gorm:"size:255" json:"companyName"`
	Email              string              `gorm:"size:255;index" json:"email"`
	Phone              string              `gorm:"size:50" json:"phone"`
	Address            string              `gorm:"type:text" json:"address"`
	City               string              `gorm:"size:100" json:"city"`
	Country            string              `gorm:"size:100" json:"country"`
	ContactName        string              `gorm:"size:255" json:"contactName"`
	ContactPerson      string              `gorm:"size:255" json:"contactPerson"`
	ContactPersonTitle string              `gorm:"size:100" json:"contactPersonTitle"`
	ContactPersonPhone string              `gorm:"size:50" json:"contactPersonPhone"`
	TaxID              string              `gorm:"size:50;column:tax_id" json:"taxId"`
	Sector             string              `gorm:"size:100" json:"sector"`
	Industry           string              `gorm:"size:100" json:"industry"`
	Type               enum.CustomerType   `gorm:"size:20" json:"type"`
	Website            string              `gorm:"size:255" json:"website"`
	Notes              string              `gorm:"type:text" json:"notes"`
	Status             enum.CustomerStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

func (c Customer) GetID() uuid.UUID { return c.ID }

// FullAddress joins the non-empty address, city and country parts.
func (c *Customer) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Address, c.City, c.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
