package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
)

// CreatePaymentRequest represents a payment creation request
type CreatePaymentRequest struct {
	PaymentNumber string             `json:"paymentNumber" binding:"max=50"`
	OrderID       uuid.UUID          `json:"orderId" binding:"required"`
	Amount        money.Cents        `json:"amount" binding:"gt=0"`
	PaymentDate   *time.Time         `json:"paymentDate"`
	Method        enum.PaymentMethod `json:"method" binding:"required_without=PaymentMethod"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod"`
	Status        enum.PaymentStatus `json:"status"`
	ReceiptNumber string             `json:"receiptNumber" binding:"max=100"`
	TransactionID string             `json:"transactionId" binding:"max=100"`
	BankDetails   string             `json:"bankDetails"`
	Notes         string             `json:"notes"`
}

// MethodValue returns method, falling back to the paymentMethod alias
func (r *CreatePaymentRequest) MethodValue() enum.PaymentMethod {
	if r.Method != "" {
		return r.Method
	}
	return r.PaymentMethod
}

// UpdatePaymentRequest represents a partial payment update
type UpdatePaymentRequest struct {
	OrderID       *uuid.UUID          `json:"orderId"`
	Amount        *money.Cents        `json:"amount" binding:"omitempty,gt=0"`
	PaymentDate   *time.Time          `json:"paymentDate"`
	Method        *enum.PaymentMethod `json:"method"`
	PaymentMethod *enum.PaymentMethod `json:"paymentMethod"`
	Status        *enum.PaymentStatus `json:"status"`
	ReceiptNumber *string             `json:"receiptNumber" binding:"omitempty,max=100"`
	TransactionID *string             `json:"transactionId" binding:"omitempty,max=100"`
	BankDetails   *string             `json:"bankDetails"`
	Notes         *string             `json:"notes"`
}

// MethodValue returns method, falling back to the paymentMethod alias
func (r *UpdatePaymentRequest) MethodValue() *enum.PaymentMethod {
	if r.Method != nil {
		return r.Method
	}
	return r.PaymentMethod
}

// PaymentFilterRequest represents payment list query parameters
type PaymentFilterRequest struct {
	Search     string `form:"q"`
	OrderID    string `form:"orderId"`
	CustomerID string `form:"customerId"`
	Status     string `form:"status"`
	Method     string `form:"method"`
}
