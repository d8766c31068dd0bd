package repository

import (
	"context"
	"sync"

	"github.com/flyambition/flyambition-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used by tests and local runs
// without a database. Insertion order is kept so List mirrors Mongo's
// natural order.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]models.Testimonial
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]models.Testimonial)}
}

func (m *MemoryRepo) Create(_ context.Context, t *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	m.store[t.ID] = *t
	m.order = append(m.order, t.ID)
	return nil
}

func (m *MemoryRepo) Get(_ context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]models.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Testimonial, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.store[id])
	}
	return out, nil
}

func (m *MemoryRepo) Update(_ context.Context, t *models.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[t.ID]; !ok {
		return ErrNotFound
	}
	m.store[t.ID] = *t
	return nil
}

func (m *MemoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
