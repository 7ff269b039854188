package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/domain/entity"
)

// Record is any API resource identified by a UUID
type Record interface {
	GetID() uuid.UUID
}

// Store is a cached collection of one resource. Reads degrade to empty or
// nil results on failure; writes return their errors and only touch the
// cache once the server has accepted them.
type Store[T Record] struct {
	client *Client
	path   string

	mu    sync.RWMutex
	items []T
}

// NewStore creates a store for the resource at path, e.g. "/customers"
func NewStore[T Record](c *Client, path string) *Store[T] {
	return &Store[T]{client: c, path: path}
}

// FetchAll replaces the cache with the server's collection. query carries
// optional equality filters such as customerId. On failure the cache is
// emptied and the error is logged.
func (s *Store[T]) FetchAll(ctx context.Context, query url.Values) []T {
	var items []T
	if err := s.client.do(ctx, http.MethodGet, s.path, query, nil, &items); err != nil {
		s.client.logger.ErrorContext(ctx, "fetch failed", "resource", s.path, "error", err)
		items = nil
	}
	if items == nil {
		items = []T{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return s.Items()
}

// GetByID returns one record, or nil when it does not exist or cannot be
// fetched.
func (s *Store[T]) GetByID(ctx context.Context, id uuid.UUID) *T {
	var item T
	err := s.client.do(ctx, http.MethodGet, s.itemPath(id), nil, nil, &item)
	switch {
	case errors.Is(err, ErrNotFound):
		s.client.logger.DebugContext(ctx, "record not found", "resource", s.path, "id", id)
		return nil
	case err != nil:
		s.client.logger.ErrorContext(ctx, "get failed", "resource", s.path, "id", id, "error", err)
		return nil
	}
	return &item
}

// Refresh re-reads a cached record from the server and replaces the cached
// copy. Records that are not cached are left alone and nil is returned.
func (s *Store[T]) Refresh(ctx context.Context, id uuid.UUID) *T {
	if _, ok := s.Cached(id); !ok {
		return nil
	}
	item := s.GetByID(ctx, id)
	if item != nil {
		s.replace(*item)
	}
	return item
}

// Add creates a record and caches the stored version
func (s *Store[T]) Add(ctx context.Context, record interface{}) (*T, error) {
	var created T
	if err := s.client.do(ctx, http.MethodPost, s.path, nil, record, &created); err != nil {
		return nil, err
	}
	s.put(created)
	return &created, nil
}

// Update sends a partial update for id. patch holds only the fields to change.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, patch interface{}) (*T, error) {
	var updated T
	if err := s.client.do(ctx, http.MethodPatch, s.itemPath(id), nil, patch, &updated); err != nil {
		return nil, err
	}
	s.put(updated)
	return &updated, nil
}

// Delete removes the record from the server and the cache. A record that is
// still referenced fails with an error matching apperror.ErrHasDependents.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.do(ctx, http.MethodDelete, s.itemPath(id), nil, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].GetID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// Items returns a copy of the cached collection
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Cached returns the cached record for id without a network call
func (s *Store[T]) Cached(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) put(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(item.GetID()); i >= 0 {
		s.items[i] = item
		return
	}
	s.items = append(s.items, item)
}

// replace swaps in item for the cached record with the same id
func (s *Store[T]) replace(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(item.GetID())
	if i < 0 {
		return false
	}
	s.items[i] = item
	return true
}

// indexOf must be called with mu held
func (s *Store[T]) indexOf(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].GetID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) itemPath(id uuid.UUID) string {
	return s.path + "/" + id.String()
}

// PaymentStore keeps the orders cache in step with payment writes, since
// every payment mutation can change its order's paymentStatus.
type PaymentStore struct {
	*Store[entity.Payment]
	orders *Store[entity.Order]
}

// Add records a payment and refreshes its order
func (s *PaymentStore) Add(ctx context.Context, record interface{}) (*entity.Payment, error) {
	payment, err := s.Store.Add(ctx, record)
	if err != nil {
		return nil, err
	}
	s.orders.Refresh(ctx, payment.OrderID)
	return payment, nil
}

// Update changes a payment and refreshes the order it belongs to, plus the
// order it was moved away from.
func (s *PaymentStore) Update(ctx context.Context, id uuid.UUID, patch interface{}) (*entity.Payment, error) {
	previous, hadPrevious := s.Store.Cached(id)
	payment, err := s.Store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.orders.Refresh(ctx, payment.OrderID)
	if hadPrevious && previous.OrderID != payment.OrderID {
		s.orders.Refresh(ctx, previous.OrderID)
	}
	return payment, nil
}

// Delete removes a payment and refreshes its order
func (s *PaymentStore) Delete(ctx context.Context, id uuid.UUID) error {
	var orderID uuid.UUID
	if cached, ok := s.Store.Cached(id); ok {
		orderID = cached.OrderID
	} else if p := s.Store.GetByID(ctx, id); p != nil {
		orderID = p.OrderID
	}

	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	if orderID != uuid.Nil {
		s.orders.Refresh(ctx, orderID)
	}
	return nil
}

// Stores groups one store per resource over a shared client
type Stores struct {
	Customers     *Store[entity.Customer]
	Opportunities *Store[entity.Opportunity]
	Offers        *Store[entity.Offer]
	Orders        *Store[entity.Order]
	Payments      *PaymentStore
}

// NewStores creates the store for every resource
func NewStores(c *Client) *Stores {
	orders := NewStore[entity.Order](c, "/orders")
	return &Stores{
		Customers:     NewStore[entity.Customer](c, "/customers"),
		Opportunities: NewStore[entity.Opportunity](c, "/opportunities"),
		Offers:        NewStore[entity.Offer](c, "/offers"),
		Orders:        orders,
		Payments: &PaymentStore{
			Store:  NewStore[entity.Payment](c, "/payments"),
			orders: orders,
		},
	}
}
