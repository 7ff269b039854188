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

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	var f repository.OrderFilter
	var ok bool
	if f.CustomerID, ok = queryUUID(c, "customerId", req.CustomerID); !ok {
		return
	}
	if f.OfferID, ok = queryUUID(c, "offerId", req.OfferID); !ok {
		return
	}
	if f.Status, ok = queryEnum(c, "status", req.Status, enum.ParseOrderStatus); !ok {
		return
	}
	if f.PaymentStatus, ok = queryEnum(c, "paymentStatus", req.PaymentStatus, enum.ParseOrderPaymentStatus); !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", filter.Orders(orders, filter.Criteria{Search: req.Search}))
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		OrderNumber:     req.OrderNumber,
		CustomerID:      req.CustomerID,
		OfferID:         req.OfferID,
		Items:           toLineItemInputs(req.Items),
		OrderDate:       req.OrderDate,
		DeliveryDate:    req.DeliveryDate,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// CreateFromOffer converts an accepted offer into an order
func (h *OrderHandler) CreateFromOffer(c *gin.Context) {
	offerID, ok := parseID(c, "offerId")
	if !ok {
		return
	}

	var req request.ConvertOfferRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrderFromOffer(c.Request.Context(), &service.ConvertOfferInput{
		OfferID:         offerID,
		OrderDate:       req.OrderDate,
		DeliveryDate:    req.DeliveryDate,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created from offer successfully", order)
}

// Get handles getting a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Balance reports what has been paid on an order and what remains
func (h *OrderHandler) Balance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	balance, err := h.orderService.GetOrderBalance(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order balance retrieved successfully", balance)
}

// Update handles a partial order update
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), &service.UpdateOrderInput{
		ID:              id,
		Items:           toOptionalLineItemInputs(req.Items),
		OrderDate:       req.OrderDate,
		DeliveryDate:    req.DeliveryDate,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Notes:           req.Notes,
		Status:          req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// Delete handles deleting an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
