package filter

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func sampleCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: uuid.New(), Name: "Acme", ContactPerson: "Maria Lopez", Status: enum.CustomerStatusActive},
		{ID: uuid.New(), Name: "Globex", ContactPerson: "Hank Scorpio", Status: enum.CustomerStatusLead},
		{ID: uuid.New(), Name: "Initech", ContactPerson: "Bill LUMBERGH", Status: enum.CustomerStatusActive},
		{ID: uuid.New(), Name: "Umbrella", ContactPerson: "", City: "Raccoon City", Status: enum.CustomerStatusInactive},
	}
}

func names(cs []entity.Customer) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestCustomers_ContactPersonSearch(t *testing.T) {
	items := sampleCustomers()

	got := Customers(items, Criteria{Search: "lumb"})
	assert.Equal(t, []string{"Initech"}, names(got))

	got = Customers(items, Criteria{Search: "  LOPEZ "})
	assert.Equal(t, []string{"Acme"}, names(got))

	got = Customers(items, Criteria{Search: "o"})
	assert.Equal(t, []string{"Acme", "Globex", "Umbrella"}, names(got))
}

func TestCustomers_EmptyCriteriaMatchesAll(t *testing.T) {
	items := sampleCustomers()
	got := Customers(items, Criteria{})
	assert.Equal(t, names(items), names(got))
}

func TestCustomers_SearchAndStatusCombine(t *testing.T) {
	items := sampleCustomers()

	got := Customers(items, Criteria{Search: "i", Status: string(enum.CustomerStatusActive)})
	assert.Equal(t, []string{"Acme", "Initech"}, names(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := sampleCustomers()
	before := names(items)

	got := Customers(items, Criteria{Status: string(enum.CustomerStatusLead)})
	assert.Len(t, got, 1)
	assert.Equal(t, before, names(items))

	got[0].Name = "changed"
	assert.Equal(t, "Globex", items[1].Name)
}

func TestApply_OrderIndependentAndIdempotent(t *testing.T) {
	items := sampleCustomers()
	search := Search("a", CustomerFields)
	status := Equals(enum.CustomerStatusActive, func(c entity.Customer) enum.CustomerStatus { return c.Status })

	ab := Apply(items, search, status)
	ba := Apply(items, status, search)
	assert.Equal(t, names(ab), names(ba))

	twice := Apply(ab, search, status)
	assert.Equal(t, names(ab), names(twice))
}

func TestPayments_MethodAndStatus(t *testing.T) {
	orderID := uuid.New()
	items := []entity.Payment{
		{CustomerName: "Acme", OrderID: orderID, Method: enum.PaymentMethodCash, Status: enum.PaymentStatusCompleted},
		{CustomerName: "Acme", OrderID: uuid.New(), Method: enum.PaymentMethodCheck, Status: enum.PaymentStatusCompleted},
		{CustomerName: "Globex", OrderID: orderID, Method: enum.PaymentMethodCash, Status: enum.PaymentStatusPending},
	}

	got := Payments(items, Criteria{Method: "cash", Status: "completed"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].CustomerName)

	got = Payments(items, Criteria{Search: orderID.String()[:8]})
	assert.Len(t, got, 2)
}

func TestOpportunities_Priority(t *testing.T) {
	items := []entity.Opportunity{
		{Title: "Fleet", Priority: enum.PriorityHigh, Status: enum.OpportunityStatusNew},
		{Title: "Pilot", Priority: enum.PriorityLow, Status: enum.OpportunityStatusNew},
	}
	got := Opportunities(items, Criteria{Priority: "high"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Fleet", got[0].Title)
}

func TestOpportunities_SearchMatchesProducts(t *testing.T) {
	items := []entity.Opportunity{
		{ID: uuid.New(), Title: "Warehouse refit", Products: []string{"Forklift", "Racking"}, Status: enum.OpportunityStatusNew},
		{ID: uuid.New(), Title: "Office move", Products: []string{"Desks"}, Status: enum.OpportunityStatusQualified},
		{ID: uuid.New(), Title: "Pilot", Status: enum.OpportunityStatusNew},
	}

	got := Opportunities(items, Criteria{Search: "FORK"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Warehouse refit", got[0].Title)

	got = Opportunities(items, Criteria{Search: "desk", Status: string(enum.OpportunityStatusNew)})
	assert.Empty(t, got)
}
