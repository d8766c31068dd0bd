package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/flyambition/flyambition-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepo implements Repository on the testimonials collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, t *models.Testimonial) error {
	res, err := m.col.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

func (m *MongoRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	return &t, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)
	out := []models.Testimonial{}
	for cur.Next(ctx) {
		var t models.Testimonial
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode testimonial: %w", err)
		}
		out = append(out, t)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return out, nil
}

// Update writes the mutable fields of t; createdAt is never touched.
func (m *MongoRepo) Update(ctx context.Context, t *models.Testimonial) error {
	set := bson.M{
		"author":  t.Author,
		"role":    t.Role,
		"country": t.Country,
		"text":    t.Text,
		"type":    t.Type,
	}
	if t.Image != "" {
		set["image"] = t.Image
	}
	if t.UpdatedAt != nil {
		set["updatedAt"] = *t.UpdatedAt
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": t.ID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
