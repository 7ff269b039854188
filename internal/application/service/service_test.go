package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/salestrack-api/internal/infrastructure/repository"
	"github.com/sangkips/salestrack-api/pkg/money"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	customers     *CustomerService
	opportunities *OpportunityService
	offers        *OfferService
	orders        *OrderService
	payments      *PaymentService
	dashboard     *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.NewSQLiteDB("file:"+name+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	customerRepo := infraRepo.NewCustomerRepository(db)
	opportunityRepo := infraRepo.NewOpportunityRepository(db)
	offerRepo := infraRepo.NewOfferRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	reconciler := NewPaymentStatusReconciler(orderRepo, paymentRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &testEnv{
		customers:     NewCustomerService(customerRepo),
		opportunities: NewOpportunityService(opportunityRepo, customerRepo),
		offers:        NewOfferService(offerRepo, customerRepo, opportunityRepo),
		orders:        NewOrderService(orderRepo, offerRepo, customerRepo, reconciler),
		payments:      NewPaymentService(paymentRepo, orderRepo, reconciler),
		dashboard:     NewDashboardService(infraRepo.NewAnalyticsRepository(db)),
	}
}

func (e *testEnv) createCustomer(t *testing.T, name string) *entity.Customer {
	t.Helper()
	c, err := e.customers.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:    name,
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
	})
	require.NoError(t, err)
	return c
}

func noTax() *float64 {
	zero := 0.0
	return &zero
}

// createOrder creates an order with a single untaxed item worth total
func (e *testEnv) createOrder(t *testing.T, customer *entity.Customer, total float64) *entity.Order {
	t.Helper()
	o, err := e.orders.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID: customer.ID,
		Items: []LineItemInput{
			{ProductName: "Consulting", Quantity: 1, UnitPrice: money.FromFloat(total), Tax: noTax()},
		},
	})
	require.NoError(t, err)
	return o
}
