package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/domain/repository"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_DefaultsToLead(t *testing.T) {
	env := newTestEnv(t)
	customer := env.createCustomer(t, "Acme")
	assert.Equal(t, enum.CustomerStatusLead, customer.Status)

	_, err := env.customers.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "X", Status: "vip"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestUpdateCustomer_Partial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "Acme")

	active := enum.CustomerStatusActive
	email := "sales@acme.test"
	updated, err := env.customers.UpdateCustomer(ctx, &UpdateCustomerInput{ID: customer.ID, Status: &active, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "Springfield", updated.City)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, active, updated.Status)

	list, err := env.customers.ListCustomers(ctx, repository.CustomerFilter{Status: &active})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, customer.ID, list[0].ID)
}

func TestDeleteCustomer_WithOpportunityIsBlocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "Acme")

	_, err := env.opportunities.CreateOpportunity(ctx, &CreateOpportunityInput{
		CustomerID:  customer.ID,
		Title:       "Fleet renewal",
		Value:       money.FromFloat(25000),
		Probability: 40,
	})
	require.NoError(t, err)

	err = env.customers.DeleteCustomer(ctx, customer.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrHasDependents)

	stored, err := env.customers.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, stored.ID)
}

func TestDeleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "Acme")

	require.NoError(t, env.customers.DeleteCustomer(ctx, customer.ID))

	_, err := env.customers.GetCustomer(ctx, customer.ID)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	err = env.customers.DeleteCustomer(ctx, customer.ID)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateOpportunity_Defaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "Acme")

	opp, err := env.opportunities.CreateOpportunity(ctx, &CreateOpportunityInput{
		CustomerID: customer.ID,
		Title:      "Pilot",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OpportunityStatusNew, opp.Status)
	assert.Equal(t, enum.PriorityMedium, opp.Priority)
	assert.Equal(t, "Acme", opp.CustomerName)

	_, err = env.opportunities.CreateOpportunity(ctx, &CreateOpportunityInput{
		CustomerID:  customer.ID,
		Title:       "Too likely",
		Probability: 150,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCustomer_TypeIndustryAndContactName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	customer, err := env.customers.CreateCustomer(ctx, &CreateCustomerInput{
		Name:        "Acme",
		ContactName: "Maria Lopez",
		Industry:    "Logistics",
		Type:        enum.CustomerTypeCorporate,
	})
	require.NoError(t, err)

	stored, err := env.customers.GetCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.CustomerTypeCorporate, stored.Type)
	assert.Equal(t, "Logistics", stored.Industry)
	assert.Equal(t, "Maria Lopez", stored.ContactName)

	individual := enum.CustomerTypeIndividual
	updated, err := env.customers.UpdateCustomer(ctx, &UpdateCustomerInput{ID: customer.ID, Type: &individual})
	require.NoError(t, err)
	assert.Equal(t, individual, updated.Type)
	assert.Equal(t, "Logistics", updated.Industry)

	unspecified, err := env.customers.CreateCustomer(ctx, &CreateCustomerInput{Name: "Solo"})
	require.NoError(t, err)
	assert.Empty(t, unspecified.Type)

	_, err = env.customers.CreateCustomer(ctx, &CreateCustomerInput{Name: "X", Type: "government"})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Equal(t, "type", appErr.Errors[0].Field)
}

func TestOpportunity_Products(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.createCustomer(t, "Acme")

	opp, err := env.opportunities.CreateOpportunity(ctx, &CreateOpportunityInput{
		CustomerID: customer.ID,
		Title:      "Warehouse refit",
		Products:   []string{" Forklift ", "", "Racking", "   "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Forklift", "Racking"}, opp.Products)

	stored, err := env.opportunities.GetOpportunity(ctx, opp.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Forklift", "Racking"}, stored.Products)

	products := []string{"Conveyor"}
	updated, err := env.opportunities.UpdateOpportunity(ctx, &UpdateOpportunityInput{ID: opp.ID, Products: &products})
	require.NoError(t, err)
	assert.Equal(t, []string{"Conveyor"}, updated.Products)

	title := "Warehouse refit phase 2"
	updated, err = env.opportunities.UpdateOpportunity(ctx, &UpdateOpportunityInput{ID: opp.ID, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []string{"Conveyor"}, updated.Products)

	none, err := env.opportunities.CreateOpportunity(ctx, &CreateOpportunityInput{CustomerID: customer.ID, Title: "Pilot"})
	require.NoError(t, err)
	assert.NotNil(t, none.Products)
	assert.Empty(t, none.Products)
}
