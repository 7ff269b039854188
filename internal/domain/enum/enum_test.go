package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	s, ok := ParseOpportunityStatus(" Closed-Won ")
	assert.True(t, ok)
	assert.Equal(t, OpportunityStatusClosedWon, s)

	_, ok = ParseOrderStatus("archived")
	assert.False(t, ok)

	m, ok := ParsePaymentMethod("BANK_TRANSFER")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodBankTransfer, m)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, OpportunityStatusClosedLost.IsClosed())
	assert.False(t, OpportunityStatusNegotiation.IsClosed())
	assert.True(t, OfferStatusSent.IsPending())
	assert.False(t, OfferStatusAccepted.IsPending())
	assert.True(t, OrderStatusShipped.IsActive())
	assert.False(t, OrderStatusCancelled.IsActive())
}

func TestScan(t *testing.T) {
	var s PaymentStatus
	assert.NoError(t, s.Scan([]byte("completed")))
	assert.Equal(t, PaymentStatusCompleted, s)
	assert.Error(t, s.Scan(42))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, StatusLabel{"Won", "bg-success"}, LabelFor(EntityOpportunity, "closed-won"))
	assert.Equal(t, StatusLabel{"Processing", "bg-warning text-dark"}, LabelFor(EntityOrder, "processing"))
	assert.Equal(t, StatusLabel{"mystery", DefaultLabelColor}, LabelFor(EntityOffer, "mystery"))
	// same status string, different vocabulary
	assert.NotEqual(t, LabelFor(EntityOrder, "new"), LabelFor(EntityOpportunity, "qualified"))
	assert.Equal(t, "Pending", LabelFor(EntityPayment, "pending").Text)
	assert.Equal(t, "Awaiting payment", LabelFor(EntityOrderPayment, "pending").Text)
}

func TestLabelTableCoversEveryStatus(t *testing.T) {
	table := LabelTable()
	for _, s := range CustomerStatuses() {
		assert.Contains(t, table[EntityCustomer], string(s))
	}
	for _, s := range OpportunityStatuses() {
		assert.Contains(t, table[EntityOpportunity], string(s))
	}
	for _, s := range OfferStatuses() {
		assert.Contains(t, table[EntityOffer], string(s))
	}
	for _, s := range OrderStatuses() {
		assert.Contains(t, table[EntityOrder], string(s))
	}
	for _, s := range OrderPaymentStatuses() {
		assert.Contains(t, table[EntityOrderPayment], string(s))
	}
	for _, s := range PaymentStatuses() {
		assert.Contains(t, table[EntityPayment], string(s))
	}
	for _, m := range PaymentMethods() {
		assert.Contains(t, table[EntityPaymentMethod], string(m))
	}
	for _, p := range Priorities() {
		assert.Contains(t, table[EntityPriority], string(p))
	}
}
