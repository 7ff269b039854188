package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/client"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/server/servertest"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) (*client.Client, *client.Stores) {
	t.Helper()
	srv := servertest.New(t, nil)
	c := client.New(srv.URL+"/api/v1", client.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return c, client.NewStores(c)
}

func TestStore_AddGetUpdate(t *testing.T) {
	ctx := context.Background()
	_, stores := newStores(t)

	created, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme", "email": "info@acme.test"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, stores.Customers.Items(), 1)

	got := stores.Customers.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)

	assert.Nil(t, stores.Customers.GetByID(ctx, uuid.New()))

	updated, err := stores.Customers.Update(ctx, created.ID, map[string]interface{}{"status": "active"})
	require.NoError(t, err)
	assert.Equal(t, enum.CustomerStatusActive, updated.Status)
	assert.Equal(t, "info@acme.test", updated.Email)

	cached, ok := stores.Customers.Cached(created.ID)
	require.True(t, ok)
	assert.Equal(t, enum.CustomerStatusActive, cached.Status)
}

func TestStore_FailedUpdateLeavesCache(t *testing.T) {
	ctx := context.Background()
	_, stores := newStores(t)

	created, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)

	_, err = stores.Customers.Update(ctx, created.ID, map[string]interface{}{"email": "broken"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)

	cached, ok := stores.Customers.Cached(created.ID)
	require.True(t, ok)
	assert.Empty(t, cached.Email)

	_, err = stores.Customers.Update(ctx, uuid.New(), map[string]interface{}{"name": "Ghost"})
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestStore_DeleteWithDependents(t *testing.T) {
	ctx := context.Background()
	_, stores := newStores(t)

	customer, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)
	opportunity, err := stores.Opportunities.Add(ctx, map[string]interface{}{
		"customerId": customer.ID,
		"title":      "Fleet renewal",
		"value":      25000,
	})
	require.NoError(t, err)

	err = stores.Customers.Delete(ctx, customer.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrHasDependents)
	assert.Len(t, stores.Customers.Items(), 1)

	require.NoError(t, stores.Opportunities.Delete(ctx, opportunity.ID))
	require.NoError(t, stores.Customers.Delete(ctx, customer.ID))
	assert.Empty(t, stores.Customers.Items())
	assert.Nil(t, stores.Customers.GetByID(ctx, customer.ID))
}

func TestStore_FetchAll(t *testing.T) {
	ctx := context.Background()
	_, stores := newStores(t)

	acme, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)
	globex, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Globex", "status": "active"})
	require.NoError(t, err)
	for _, c := range []*entity.Customer{acme, globex} {
		_, err := stores.Opportunities.Add(ctx, map[string]interface{}{"customerId": c.ID, "title": "Deal for " + c.Name})
		require.NoError(t, err)
	}

	assert.Len(t, stores.Customers.FetchAll(ctx, nil), 2)
	active := stores.Customers.FetchAll(ctx, url.Values{"status": {"active"}})
	require.Len(t, active, 1)
	assert.Equal(t, globex.ID, active[0].ID)
	assert.Len(t, stores.Customers.Items(), 1)

	opps := stores.Opportunities.FetchAll(ctx, url.Values{"customerId": {acme.ID.String()}})
	require.Len(t, opps, 1)
	assert.Equal(t, "Deal for Acme", opps[0].Title)
}

func TestStore_FetchAllTransportFailure(t *testing.T) {
	ctx := context.Background()
	c := client.New("http://127.0.0.1:1/api/v1", client.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	stores := client.NewStores(c)

	items := stores.Customers.FetchAll(ctx, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Nil(t, stores.Orders.GetByID(ctx, uuid.New()))

	_, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	assert.Error(t, err)
}

func TestPaymentStore_RefreshesOrder(t *testing.T) {
	ctx := context.Background()
	c, stores := newStores(t)

	customer, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)
	order, err := stores.Orders.Add(ctx, map[string]interface{}{
		"customerId": customer.ID,
		"items":      []map[string]interface{}{{"productName": "Widget", "quantity": 1, "unitPrice": 1000, "tax": 0}},
	})
	require.NoError(t, err)
	assert.Equal(t, enum.OrderPaymentPending, order.PaymentStatus)

	payment, err := stores.Payments.Add(ctx, map[string]interface{}{
		"orderId": order.ID, "amount": 400, "method": "cash", "status": "completed",
	})
	require.NoError(t, err)
	cached, ok := stores.Orders.Cached(order.ID)
	require.True(t, ok)
	assert.Equal(t, enum.OrderPaymentPartial, cached.PaymentStatus)

	_, err = stores.Payments.Update(ctx, payment.ID, map[string]interface{}{"amount": 1000})
	require.NoError(t, err)
	cached, _ = stores.Orders.Cached(order.ID)
	assert.Equal(t, enum.OrderPaymentPaid, cached.PaymentStatus)

	balance, err := c.Balance(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", balance.RemainingAmount.String())

	require.NoError(t, stores.Payments.Delete(ctx, payment.ID))
	cached, _ = stores.Orders.Cached(order.ID)
	assert.Equal(t, enum.OrderPaymentPending, cached.PaymentStatus)
	assert.Empty(t, stores.Payments.Items())
}

func TestClient_LoginAndToken(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	cfg := servertest.Config()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.PasswordHash = hash
	srv := servertest.New(t, cfg)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	anonymous := client.New(srv.URL+"/api/v1", client.WithLogger(logger))
	_, err = client.NewStores(anonymous).Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = anonymous.Login(ctx, "admin", "wrong")
	assert.Error(t, err)

	token, err := anonymous.Login(ctx, "admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	authed := client.New(srv.URL+"/api/v1", client.WithToken(token.AccessToken), client.WithLogger(logger))
	_, err = client.NewStores(authed).Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)

	labels, err := authed.StatusLabels(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Paid", labels[enum.EntityOrderPayment]["paid"].Text)
}

func TestPaymentStore_DoesNotCacheUnfetchedOrders(t *testing.T) {
	ctx := context.Background()
	srv := servertest.New(t, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	admin := client.NewStores(client.New(srv.URL+"/api/v1", client.WithLogger(logger)))
	cashier := client.NewStores(client.New(srv.URL+"/api/v1", client.WithLogger(logger)))

	customer, err := admin.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	require.NoError(t, err)
	order, err := admin.Orders.Add(ctx, map[string]interface{}{
		"customerId": customer.ID,
		"items":      []map[string]interface{}{{"productName": "Widget", "quantity": 1, "unitPrice": 100, "tax": 0}},
	})
	require.NoError(t, err)

	payment, err := cashier.Payments.Add(ctx, map[string]interface{}{
		"orderId": order.ID, "amount": 100, "method": "cash", "status": "completed",
	})
	require.NoError(t, err)
	assert.Empty(t, cashier.Orders.Items())
	assert.Nil(t, cashier.Orders.Refresh(ctx, order.ID))

	require.NoError(t, cashier.Payments.Delete(ctx, payment.ID))
	assert.Empty(t, cashier.Orders.Items())

	cashier.Orders.FetchAll(ctx, nil)
	_, err = cashier.Payments.Add(ctx, map[string]interface{}{
		"orderId": order.ID, "amount": 100, "method": "cash", "status": "completed",
	})
	require.NoError(t, err)
	orders := cashier.Orders.Items()
	require.Len(t, orders, 1)
	assert.Equal(t, enum.OrderPaymentPaid, orders[0].PaymentStatus)
}

func TestStore_GetByIDFailures(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"Internal server error"}`))
	}))
	t.Cleanup(failing.Close)

	stores := client.NewStores(client.New(failing.URL+"/api/v1", client.WithLogger(logger)))
	assert.Nil(t, stores.Customers.GetByID(ctx, uuid.New()))
	assert.Empty(t, stores.Payments.FetchAll(ctx, nil))

	_, err := stores.Customers.Add(ctx, map[string]interface{}{"name": "Acme"})
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	closed := httptest.NewServer(http.NotFoundHandler())
	addr := closed.URL
	closed.Close()

	offline := client.NewStores(client.New(addr+"/api/v1", client.WithLogger(logger)))
	assert.Nil(t, offline.Customers.GetByID(ctx, uuid.New()))
	assert.Nil(t, offline.Opportunities.GetByID(ctx, uuid.New()))
	assert.Nil(t, offline.Orders.Refresh(ctx, uuid.New()))
}
