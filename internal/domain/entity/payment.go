package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/pkg/money"
	"gorm.io/gorm"
)

// PaymentNumberPrefix starts every generated payment number, e.g. PAY-2026-001
const PaymentNumberPrefix = "PAY"

// Payment records money received against an order
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	PaymentNumber string             `gorm:"size:50;uniqueIndex;not null" json:"paymentNumber"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"orderId"`
	OrderNumber   string             `gorm:"size:50" json:"orderNumber"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customerId"`
	CustomerName  string             `gorm:"size:255" json:"customerName"`
	Amount        money.Cents        `gorm:"not null" json:"amount"`
	PaymentDate   time.Time          `gorm:"not null" json:"paymentDate"`
	Method        enum.PaymentMethod `gorm:"size:20;not null;index" json:"method"`
	Status        enum.PaymentStatus `gorm:"size:20;not null;index" json:"status"`
	ReceiptNumber string             `gorm:"size:100" json:"receiptNumber"`
	TransactionID string             `gorm:"size:100" json:"transactionId"`
	BankDetails   string             `gorm:"type:text" json:"bankDetails"`
	Notes         string             `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`

	// Relationships
	Order    *Order    `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

func (p Payment) GetID() uuid.UUID { return p.ID }
