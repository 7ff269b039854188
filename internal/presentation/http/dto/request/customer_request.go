package request

import "github.com/sangkips/salestrack-api/internal/domain/enum"

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	Name               string              `json:"name" binding:"required,max=255"`
	CompanyName        string              `json:"companyName" binding:"max=255"`
	Email              string              `json:"email" binding:"omitempty,email"`
	Phone              string              `json:"phone" binding:"max=50"`
	Address            string              `json:"address"`
	City               string              `json:"city" binding:"max=100"`
	Country            string              `json:"country" binding:"max=100"`
	ContactName        string              `json:"contactName" binding:"max=255"`
	ContactPerson      string              `json:"contactPerson" binding:"max=255"`
	ContactPersonTitle string              `json:"contactPersonTitle" binding:"max=100"`
	ContactPersonPhone string              `json:"contactPersonPhone" binding:"max=50"`
	TaxID              string              `json:"taxId" binding:"max=50"`
	Sector             string              `json:"sector" binding:"max=100"`
	Industry           string              `json:"industry" binding:"max=100"`
	Type               enum.CustomerType   `json:"type"`
	Website            string              `json:"website" binding:"max=255"`
	Notes              string              `json:"notes"`
	Status             enum.CustomerStatus `json:"status"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name               *string              `json:"name" binding:"omitempty,min=1,max=255"`
	CompanyName        *string              `json:"companyName" binding:"omitempty,max=255"`
	Email              *string              `json:"email" binding:"omitempty,email"`
	Phone              *string              `json:"phone" binding:"omitempty,max=50"`
	Address            *string              `json:"address"`
	City               *string              `json:"city" binding:"omitempty,max=100"`
	Country            *string              `json:"country" binding:"omitempty,max=100"`
	ContactName        *string              `json:"contactName" binding:"omitempty,max=255"`
	ContactPerson      *string              `json:"contactPerson" binding:"omitempty,max=255"`
	ContactPersonTitle *string              `json:"contactPersonTitle" binding:"omitempty,max=100"`
	ContactPersonPhone *string              `json:"contactPersonPhone" binding:"omitempty,max=50"`
	TaxID              *string              `json:"taxId" binding:"omitempty,max=50"`
	Sector             *string              `json:"sector" binding:"omitempty,max=100"`
	Industry           *string              `json:"industry" binding:"omitempty,max=100"`
	Type               *enum.CustomerType   `json:"type"`
	Website            *string              `json:"website" binding:"omitempty,max=255"`
	Notes              *string              `json:"notes"`
	Status             *enum.CustomerStatus `json:"status"`
}

// CustomerFilterRequest represents customer list query parameters
type CustomerFilterRequest struct {
	Search string `form:"q"`
	Status string `form:"status"`
}
