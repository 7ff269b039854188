package main

import (
	"testing"

	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	assert.Equal(t, "-", badge(enum.EntityOrder, ""))
	assert.Contains(t, badge(enum.EntityOrderPayment, "partial"), "Partially paid")
	assert.Contains(t, badge(enum.EntityOffer, "mystery"), "mystery")
}

func TestEqualityQuery(t *testing.T) {
	q := equalityQuery("customerId", "abc", "status", "")
	assert.Equal(t, "customerId=abc", q.Encode())
	assert.Empty(t, equalityQuery("orderId", ""))
}
