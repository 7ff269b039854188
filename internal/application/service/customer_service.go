package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
)

var errInvalidCustomerType = apperror.NewFieldError("type", "must be one of corporate, individual")

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name               string
	CompanyName        string
	Email              string
	Phone              string
	Address            string
	City               string
	Country            string
	ContactName        string
	ContactPerson      string
	ContactPersonTitle string
	ContactPersonPhone string
	TaxID              string
	Sector             string
	Industry           string
	Type               enum.CustomerType
	Website            string
	Notes              string
	Status             enum.CustomerStatus
}

// CreateCustomer creates a new customer. Status defaults to lead.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	status := input.Status
	if status == "" {
		status = enum.CustomerStatusLead
	}
	if !status.IsValid() {
		return nil, apperror.NewFieldError("status", "must be one of active, inactive, lead")
	}
	if !input.Type.IsValid() {
		return nil, errInvalidCustomerType
	}

	customer := &entity.Customer{
		Name:               input.Name,
		CompanyName:        input.CompanyName,
		Email:              input.Email,
		Phone:              input.Phone,
		Address:            input.Address,
		City:               input.City,
		Country:            input.Country,
		ContactName:        input.ContactName,
		ContactPerson:      input.ContactPerson,
		ContactPersonTitle: input.ContactPersonTitle,
		ContactPersonPhone: input.ContactPersonPhone,
		TaxID:              input.TaxID,
		Sector:             input.Sector,
		Industry:           input.Industry,
		Type:               input.Type,
		Website:            input.Website,
		Notes:              input.Notes,
		Status:             status,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists all customers matching filter, newest first
func (s *CustomerService) ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx, filter)
}

// UpdateCustomerInput represents the update customer input. Nil fields are left unchanged.
type UpdateCustomerInput struct {
	ID                 uuid.UUID
	Name               *string
	CompanyName        *string
	Email              *string
	Phone              *string
	Address            *string
	City               *string
	Country            *string
	ContactName        *string
	ContactPerson      *string
	ContactPersonTitle *string
	ContactPersonPhone *string
	TaxID              *string
	Sector             *string
	Industry           *string
	Type               *enum.CustomerType
	Website            *string
	Notes              *string
	Status             *enum.CustomerStatus
}

// UpdateCustomer applies a partial update to a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewFieldError("status", "must be one of active, inactive, lead")
		}
		customer.Status = *input.Status
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, errInvalidCustomerType
		}
		customer.Type = *input.Type
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewFieldError("name", "must not be empty")
		}
		customer.Name = *input.Name
	}
	setString(&customer.CompanyName, input.CompanyName)
	setString(&customer.Email, input.Email)
	setString(&customer.Phone, input.Phone)
	setString(&customer.Address, input.Address)
	setString(&customer.City, input.City)
	setString(&customer.Country, input.Country)
	setString(&customer.ContactName, input.ContactName)
	setString(&customer.ContactPerson, input.ContactPerson)
	setString(&customer.ContactPersonTitle, input.ContactPersonTitle)
	setString(&customer.ContactPersonPhone, input.ContactPersonPhone)
	setString(&customer.TaxID, input.TaxID)
	setString(&customer.Sector, input.Sector)
	setString(&customer.Industry, input.Industry)
	setString(&customer.Website, input.Website)
	setString(&customer.Notes, input.Notes)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer. Customers still referenced by
// opportunities, offers, orders or payments cannot be deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}

// lookupCustomer returns the customer or a 404 error
func lookupCustomer(ctx context.Context, repo repository.CustomerRepository, id uuid.UUID) (*entity.Customer, error) {
	customer, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
