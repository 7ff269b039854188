package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/server/servertest"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Errors  []apperror.FieldError `json:"errors"`
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), string(env.Data))
	return v
}

func createCustomer(t *testing.T, router *gin.Engine, body map[string]interface{}) entity.Customer {
	t.Helper()
	w, env := do(t, router, http.MethodPost, "/api/v1/customers", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[entity.Customer](t, env)
}

func TestHealth(t *testing.T) {
	router, _ := servertest.Router(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCustomerCRUD(t *testing.T) {
	router, _ := servertest.Router(t, nil)

	created := createCustomer(t, router, map[string]interface{}{
		"name":          "Acme",
		"email":         "info@acme.test",
		"contactPerson": "Maria Lopez",
	})
	assert.Equal(t, enum.CustomerStatusLead, created.Status)
	createCustomer(t, router, map[string]interface{}{"name": "Globex", "contactPerson": "Hank Scorpio"})

	w, env := do(t, router, http.MethodGet, "/api/v1/customers/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Acme", decode[entity.Customer](t, env).Name)

	w, env = do(t, router, http.MethodPatch, "/api/v1/customers/"+created.ID.String(), map[string]interface{}{
		"status": "active",
		"city":   "Springfield",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[entity.Customer](t, env)
	assert.Equal(t, enum.CustomerStatusActive, updated.Status)
	assert.Equal(t, "info@acme.test", updated.Email)

	w, env = do(t, router, http.MethodGet, "/api/v1/customers?q=LOPEZ", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[[]entity.Customer](t, env)
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)

	w, env = do(t, router, http.MethodGet, "/api/v1/customers?status=lead", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Customer](t, env), 1)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers?status=bogus", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/api/v1/customers/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCustomer_ValidationErrors(t *testing.T) {
	router, _ := servertest.Router(t, nil)

	w, env := do(t, router, http.MethodPost, "/api/v1/customers", map[string]interface{}{"email": "not-an-email"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, env.Success)

	fields := map[string]string{}
	for _, fe := range env.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "is required", fields["name"])
	assert.Contains(t, fields, "email")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCustomerWithOpportunity(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, _ := do(t, router, http.MethodPost, "/api/v1/opportunities", map[string]interface{}{
		"customerId": customer.ID,
		"title":      "Fleet renewal",
		"value":      25000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := do(t, router, http.MethodDelete, "/api/v1/customers/"+customer.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.ErrHasDependents.Message, env.Message)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers/"+customer.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderPaymentFlow(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme", "address": "1 Main St", "city": "Springfield"})

	w, env := do(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customerId": customer.ID,
		"items": []map[string]interface{}{
			{"productName": "Widget", "quantity": 2, "unitPrice": 100, "discount": 0, "tax": 18},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[entity.Order](t, env)
	assert.Equal(t, "236.00", order.TotalAmount.String())
	assert.Equal(t, "236.00", order.Items[0].Total.String())
	assert.Equal(t, enum.OrderPaymentPending, order.PaymentStatus)
	assert.Equal(t, "1 Main St, Springfield", order.BillingAddress)
	assert.Contains(t, w.Body.String(), `"totalAmount":236.00`)

	w, _ = do(t, router, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"orderId": order.ID,
		"amount":  100,
		"method":  "cash",
		"status":  "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = do(t, router, http.MethodGet, "/api/v1/orders/"+order.ID.String()+"/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	balance := decode[entity.OrderBalance](t, env)
	assert.Equal(t, "100.00", balance.PaidAmount.String())
	assert.Equal(t, "136.00", balance.RemainingAmount.String())
	assert.Equal(t, enum.OrderPaymentPartial, balance.PaymentStatus)

	w, _ = do(t, router, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"orderId": order.ID,
		"amount":  136,
		"method":  "bank_transfer",
		"status":  "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = do(t, router, http.MethodGet, "/api/v1/orders/"+order.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, enum.OrderPaymentPaid, decode[entity.Order](t, env).PaymentStatus)

	w, env = do(t, router, http.MethodGet, "/api/v1/orders?paymentStatus=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Order](t, env), 1)

	w, env = do(t, router, http.MethodGet, "/api/v1/payments?orderId="+order.ID.String()+"&method=cash", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Payment](t, env), 1)
}

func TestCreateOrder_InvalidItems(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, env := do(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customerId": customer.ID,
		"items":      []map[string]interface{}{{"productName": "Widget", "quantity": 0, "unitPrice": 10}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "items[0].quantity", env.Errors[0].Field)

	w, _ = do(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{"customerId": customer.ID})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestConvertOffer(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, env := do(t, router, http.MethodPost, "/api/v1/offers", map[string]interface{}{
		"customerId": customer.ID,
		"title":      "Support contract",
		"status":     "accepted",
		"items":      []map[string]interface{}{{"productName": "Support", "quantity": 12, "unitPrice": 50}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	offer := decode[entity.Offer](t, env)
	assert.Equal(t, "708.00", offer.TotalAmount.String())

	w, env = do(t, router, http.MethodPost, "/api/v1/orders/from-offer/"+offer.ID.String(), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[entity.Order](t, env)
	assert.Equal(t, offer.TotalAmount, order.TotalAmount)

	w, _ = do(t, router, http.MethodPost, "/api/v1/orders/from-offer/"+offer.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdempotentPaymentCreate(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, env := do(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customerId": customer.ID,
		"items":      []map[string]interface{}{{"productName": "Widget", "quantity": 1, "unitPrice": 100, "tax": 0}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[entity.Order](t, env)

	body := map[string]interface{}{"orderId": order.ID, "amount": 40, "method": "cash", "status": "completed"}
	first, firstEnv := do(t, router, http.MethodPost, "/api/v1/payments", body, "Idempotency-Key", "pay-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second, secondEnv := do(t, router, http.MethodPost, "/api/v1/payments", body, "Idempotency-Key", "pay-1")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, decode[entity.Payment](t, firstEnv).ID, decode[entity.Payment](t, secondEnv).ID)

	body["amount"] = 50
	w, _ = do(t, router, http.MethodPost, "/api/v1/payments", body, "Idempotency-Key", "pay-1")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env = do(t, router, http.MethodGet, "/api/v1/payments?orderId="+order.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Payment](t, env), 1)
}

func TestStatusLabelsAndDashboard(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, env := do(t, router, http.MethodGet, "/api/v1/status-labels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	labels := decode[map[enum.EntityType]map[string]enum.StatusLabel](t, env)
	assert.Equal(t, "Active", labels[enum.EntityCustomer]["active"].Text)

	w, env = do(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[map[string]json.RawMessage](t, env)
	assert.JSONEq(t, "1", string(summary["customerCount"]))
}

func TestAuthRequiredWhenConfigured(t *testing.T) {
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	cfg := servertest.Config()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.PasswordHash = hash
	router, _ := servertest.Router(t, cfg)

	w, _ := do(t, router, http.MethodGet, "/api/v1/customers", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, router, http.MethodPost, "/api/v1/auth/token", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, router, http.MethodPost, "/api/v1/auth/token", map[string]string{"username": "admin", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decode[map[string]interface{}](t, env)["accessToken"].(string)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/customers", nil, "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimit(t *testing.T) {
	cfg := servertest.Config()
	cfg.RateLimit.Requests = 2
	router, _ := servertest.Router(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w, _ := do(t, router, http.MethodGet, "/api/v1/customers", nil)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCreatePayment_AcceptsPaymentMethodAlias(t *testing.T) {
	router, _ := servertest.Router(t, nil)
	customer := createCustomer(t, router, map[string]interface{}{"name": "Acme"})

	w, env := do(t, router, http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"customerId": customer.ID,
		"items":      []map[string]interface{}{{"productName": "Widget", "quantity": 1, "unitPrice": 100, "tax": 0}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[entity.Order](t, env)

	w, env = do(t, router, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"orderId":       order.ID,
		"amount":        30,
		"paymentMethod": "bank_transfer",
		"status":        "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	payment := decode[entity.Payment](t, env)
	assert.Equal(t, enum.PaymentMethodBankTransfer, payment.Method)

	w, env = do(t, router, http.MethodPatch, "/api/v1/payments/"+payment.ID.String(), map[string]interface{}{
		"paymentMethod": "check",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, enum.PaymentMethodCheck, decode[entity.Payment](t, env).Method)

	w, env = do(t, router, http.MethodPost, "/api/v1/payments", map[string]interface{}{
		"orderId": order.ID,
		"amount":  30,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "method", env.Errors[0].Field)
	assert.Equal(t, "is required", env.Errors[0].Message)
}

func TestCustomerAndOpportunityExtraFields(t *testing.T) {
	router, _ := servertest.Router(t, nil)

	customer := createCustomer(t, router, map[string]interface{}{
		"name":        "Acme",
		"type":        "corporate",
		"industry":    "Logistics",
		"contactName": "Maria Lopez",
	})
	assert.Equal(t, enum.CustomerTypeCorporate, customer.Type)
	assert.Equal(t, "Logistics", customer.Industry)
	assert.Equal(t, "Maria Lopez", customer.ContactName)

	w, _ := do(t, router, http.MethodPost, "/api/v1/customers", map[string]interface{}{"name": "Bad", "type": "government"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, env := do(t, router, http.MethodPost, "/api/v1/opportunities", map[string]interface{}{
		"customerId": customer.ID,
		"title":      "Warehouse refit",
		"products":   []string{"Forklift", " ", "Racking"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, []string{"Forklift", "Racking"}, decode[entity.Opportunity](t, env).Products)

	w, env = do(t, router, http.MethodGet, "/api/v1/opportunities?q=racking", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entity.Opportunity](t, env), 1)
}
