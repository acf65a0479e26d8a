// Package memory is a map-backed implementation of store.Store. It mirrors
// what the Postgres store does, including revision checks and transactional
// rollback, so the engine and HTTP layer can be exercised without a
// database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/store"
)

// initialOrderNumber seeds the counter so the first order is #1001.
const initialOrderNumber = 1000

// Store is an in-memory store.Store. All access is serialized through a
// single RWMutex; transactions snapshot the state and restore it on error.
type Store struct {
	mu       sync.RWMutex
	st       *state
	orderSeq int64
}

type state struct {
	staff      map[uuid.UUID]models.Staff
	categories map[uuid.UUID]models.MenuCategory
	menuItems  map[uuid.UUID]models.MenuItem
	tables     map[uuid.UUID]models.Table
	orders     map[uuid.UUID]models.Order
	orderItems map[uuid.UUID]models.OrderItem
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		st:       newState(),
		orderSeq: initialOrderNumber,
	}
}

func newState() *state {
	return &state{
		staff:      make(map[uuid.UUID]models.Staff),
		categories: make(map[uuid.UUID]models.MenuCategory),
		menuItems:  make(map[uuid.UUID]models.MenuItem),
		tables:     make(map[uuid.UUID]models.Table),
		orders:     make(map[uuid.UUID]models.Order),
		orderItems: make(map[uuid.UUID]models.OrderItem),
	}
}

// clone copies every map so a failed transaction can roll back to the
// pre-transaction state. Entities are plain values, so a shallow map copy
// is a full snapshot.
func (st *state) clone() *state {
	snap := newState()
	for k, v := range st.staff {
		snap.staff[k] = v
	}
	for k, v := range st.categories {
		snap.categories[k] = v
	}
	for k, v := range st.menuItems {
		snap.menuItems[k] = v
	}
	for k, v := range st.tables {
		snap.tables[k] = v
	}
	for k, v := range st.orders {
		snap.orders[k] = v
	}
	for k, v := range st.orderItems {
		snap.orderItems[k] = v
	}
	return snap
}

// WithinTx runs fn under the write lock against an unlocked view. If fn
// returns an error every write inside it is rolled back. The order number
// counter is deliberately not rolled back: allocated numbers are burned,
// never reused.
func (s *Store) WithinTx(ctx context.Context, fn func(store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.st.clone()
	if err := fn(&txStore{s: s}); err != nil {
		s.st = snap
		return err
	}
	return nil
}

// txStore is the view handed to WithinTx callbacks. The write lock is
// already held, so it delegates straight to the state helpers.
type txStore struct {
	s *Store
}

// WithinTx on a transactional view joins the ambient transaction.
func (t *txStore) WithinTx(ctx context.Context, fn func(store.Store) error) error {
	return fn(t)
}

func (t *txStore) NextOrderNumber(ctx context.Context) (int64, error) {
	t.s.orderSeq++
	return t.s.orderSeq, nil
}

func (s *Store) NextOrderNumber(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderSeq++
	return s.orderSeq, nil
}
