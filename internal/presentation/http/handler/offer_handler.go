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

// OfferHandler handles offer-related HTTP requests
type OfferHandler struct {
	offerService *service.OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerService *service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// List handles listing offers
func (h *OfferHandler) List(c *gin.Context) {
	var req request.OfferFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	var f repository.OfferFilter
	var ok bool
	if f.CustomerID, ok = queryUUID(c, "customerId", req.CustomerID); !ok {
		return
	}
	if f.OpportunityID, ok = queryUUID(c, "opportunityId", req.OpportunityID); !ok {
		return
	}
	if f.Status, ok = queryEnum(c, "status", req.Status, enum.ParseOfferStatus); !ok {
		return
	}

	offers, err := h.offerService.ListOffers(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Offers retrieved successfully", filter.Offers(offers, filter.Criteria{Search: req.Search}))
}

// Create handles creating an offer
func (h *OfferHandler) Create(c *gin.Context) {
	var req request.CreateOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), &service.CreateOfferInput{
		OfferNumber:   req.OfferNumber,
		CustomerID:    req.CustomerID,
		OpportunityID: req.OpportunityID,
		Title:         req.Title,
		Description:   req.Description,
		Items:         toLineItemInputs(req.Items),
		ValidUntil:    req.ValidUntil,
		Terms:         req.Terms,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Offer created successfully", offer)
}

// Get handles getting a single offer with its items
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	offer, err := h.offerService.GetOffer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Offer retrieved successfully", offer)
}

// Update handles a partial offer update
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), &service.UpdateOfferInput{
		ID:            id,
		CustomerID:    req.CustomerID,
		OpportunityID: req.OpportunityID,
		Title:         req.Title,
		Description:   req.Description,
		Items:         toOptionalLineItemInputs(req.Items),
		ValidUntil:    req.ValidUntil,
		Terms:         req.Terms,
		Notes:         req.Notes,
		Status:        req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Offer updated successfully", offer)
}

// Delete handles deleting an offer
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.offerService.DeleteOffer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
