package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKey stores the first response produced for a client-supplied
// Idempotency-Key so retried writes can be replayed instead of re-applied.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key          string    `gorm:"uniqueIndex:idx_idempotency_scope_key;size:255;not null" json:"key"`
	Scope        string    `gorm:"uniqueIndex:idx_idempotency_scope_key;size:255;not null" json:"scope"` // caller identity: operator name or client IP
	Endpoint     string    `gorm:"size:255;not null" json:"endpoint"`                                    // e.g. "POST /api/v1/payments"
	RequestHash  string    `gorm:"size:64" json:"requestHash"`                                           // SHA-256 of the request body
	ResponseCode int       `gorm:"not null" json:"responseCode"`
	ResponseBody string    `gorm:"type:text" json:"responseBody"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expiresAt"`
}

func (i *IdempotencyKey) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
