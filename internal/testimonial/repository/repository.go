package repository

import (
	"context"
	"errors"

	"github.com/flyambition/flyambition-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = errors.New("testimonial not found")
)

// Repository persists testimonials. List returns records in storage order.
type Repository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Testimonial, error)
	List(ctx context.Context) ([]models.Testimonial, error)
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
