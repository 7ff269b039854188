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

// OpportunityHandler handles opportunity-related HTTP requests
type OpportunityHandler struct {
	opportunityService *service.OpportunityService
}

// NewOpportunityHandler creates a new opportunity handler
func NewOpportunityHandler(opportunityService *service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

// List handles listing opportunities
func (h *OpportunityHandler) List(c *gin.Context) {
	var req request.OpportunityFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	var f repository.OpportunityFilter
	var ok bool
	if f.CustomerID, ok = queryUUID(c, "customerId", req.CustomerID); !ok {
		return
	}
	if f.Status, ok = queryEnum(c, "status", req.Status, enum.ParseOpportunityStatus); !ok {
		return
	}
	if f.Priority, ok = queryEnum(c, "priority", req.Priority, enum.ParsePriority); !ok {
		return
	}

	opportunities, err := h.opportunityService.ListOpportunities(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunities retrieved successfully", filter.Opportunities(opportunities, filter.Criteria{Search: req.Search}))
}

// Create handles creating an opportunity
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req request.CreateOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.CreateOpportunity(c.Request.Context(), &service.CreateOpportunityInput{
		CustomerID:        req.CustomerID,
		Title:             req.Title,
		Description:       req.Description,
		Value:             req.Value,
		Probability:       req.Probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		AssignedTo:        req.AssignedTo,
		Source:            req.Source,
		Products:          req.Products,
		Priority:          req.Priority,
		Notes:             req.Notes,
		Status:            req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Opportunity created successfully", opportunity)
}

// Get handles getting a single opportunity
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	opportunity, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity retrieved successfully", opportunity)
}

// Update handles a partial opportunity update
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateOpportunityRequest
	if !bindJSON(c, &req) {
		return
	}

	opportunity, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), &service.UpdateOpportunityInput{
		ID:                id,
		CustomerID:        req.CustomerID,
		Title:             req.Title,
		Description:       req.Description,
		Value:             req.Value,
		Probability:       req.Probability,
		ExpectedCloseDate: req.ExpectedCloseDate,
		AssignedTo:        req.AssignedTo,
		Source:            req.Source,
		Products:          req.Products,
		Priority:          req.Priority,
		Notes:             req.Notes,
		Status:            req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Opportunity updated successfully", opportunity)
}

// Delete handles deleting an opportunity
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.opportunityService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
