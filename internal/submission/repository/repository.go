package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/flyambition/flyambition-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository stores immutable form submissions of a single kind.
type Repository interface {
	Insert(ctx context.Context, sub models.Submission) (primitive.ObjectID, error)
	List(ctx context.Context) ([]models.Submission, error)
}

// MongoRepo persists submissions verbatim into one collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, sub models.Submission) (primitive.ObjectID, error) {
	res, err := m.col.InsertOne(ctx, sub)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", m.col.Name(), err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]models.Submission, error) {
	cur, err := m.col.Find(ctx, primitive.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", m.col.Name(), err)
	}
	out := []models.Submission{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.col.Name(), err)
	}
	if out == nil {
		out = []models.Submission{}
	}
	return out, nil
}

// MemoryRepo keeps submissions in insertion order; used by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	subs []models.Submission
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(_ context.Context, sub models.Submission) (primitive.ObjectID, error) {
	oid := primitive.NewObjectID()
	stored := make(models.Submission, len(sub)+1)
	for k, v := range sub {
		stored[k] = v
	}
	stored["_id"] = oid
	m.mu.Lock()
	m.subs = append(m.subs, stored)
	m.mu.Unlock()
	return oid, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Submission, len(m.subs))
	copy(out, m.subs)
	return out, nil
}
