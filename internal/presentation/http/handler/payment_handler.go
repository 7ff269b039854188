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

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing payments
func (h *PaymentHandler) List(c *gin.Context) {
	var req request.PaymentFilterRequest
	if !bindQuery(c, &req) {
		return
	}

	var f repository.PaymentFilter
	var ok bool
	if f.OrderID, ok = queryUUID(c, "orderId", req.OrderID); !ok {
		return
	}
	if f.CustomerID, ok = queryUUID(c, "customerId", req.CustomerID); !ok {
		return
	}
	if f.Status, ok = queryEnum(c, "status", req.Status, enum.ParsePaymentStatus); !ok {
		return
	}
	if f.Method, ok = queryEnum(c, "method", req.Method, enum.ParsePaymentMethod); !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), f)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", filter.Payments(payments, filter.Criteria{Search: req.Search}))
}

// Create handles recording a payment. The order's payment status is
// recomputed before the response is written.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req request.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), &service.CreatePaymentInput{
		PaymentNumber: req.PaymentNumber,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		Method:        req.MethodValue(),
		Status:        req.Status,
		ReceiptNumber: req.ReceiptNumber,
		TransactionID: req.TransactionID,
		BankDetails:   req.BankDetails,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment created successfully", payment)
}

// Get handles getting a single payment
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

// Update handles a partial payment update
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), &service.UpdatePaymentInput{
		ID:            id,
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		Method:        req.MethodValue(),
		Status:        req.Status,
		ReceiptNumber: req.ReceiptNumber,
		TransactionID: req.TransactionID,
		BankDetails:   req.BankDetails,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment updated successfully", payment)
}

// Delete handles deleting a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
