package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/application/filter"
	"github.com/sangkips/salestrack-api/internal/application/service"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/request"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers. q searches name, company, email, phone,
// city and contact person.
func (h *CustomerHandler) List(c *gin.Context) {
	var req request.CustomerFilterRequest
	if !bindQuery(c, &req) {
		return
	}
	status, ok := queryEnum(c, "status", req.Status, enum.ParseCustomerStatus)
	if !ok {
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), repository.CustomerFilter{Status: status})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", filter.Customers(customers, filter.Criteria{Search: req.Search}))
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:               req.Name,
		CompanyName:        req.CompanyName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		City:               req.City,
		Country:            req.Country,
		ContactName:        req.ContactName,
		ContactPerson:      req.ContactPerson,
		ContactPersonTitle: req.ContactPersonTitle,
		ContactPersonPhone: req.ContactPersonPhone,
		TaxID:              req.TaxID,
		Sector:             req.Sector,
		Industry:           req.Industry,
		Type:               req.Type,
		Website:            req.Website,
		Notes:              req.Notes,
		Status:             req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles a partial customer update
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:                 id,
		Name:               req.Name,
		CompanyName:        req.CompanyName,
		Email:              req.Email,
		Phone:              req.Phone,
		Address:            req.Address,
		City:               req.City,
		Country:            req.Country,
		ContactName:        req.ContactName,
		ContactPerson:      req.ContactPerson,
		ContactPersonTitle: req.ContactPersonTitle,
		ContactPersonPhone: req.ContactPersonPhone,
		TaxID:              req.TaxID,
		Sector:             req.Sector,
		Industry:           req.Industry,
		Type:               req.Type,
		Website:            req.Website,
		Notes:              req.Notes,
		Status:             req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
