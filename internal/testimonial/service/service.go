package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/testimonial/repository"
	"github.com/flyambition/flyambition-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound   = errors.New("testimonial not found")
	ErrInvalidID  = errors.New("invalid testimonial id")
	ErrValidation = errors.New("missing required fields")
)

// ImageStore persists uploaded images and removes replaced ones.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	RemoveBestEffort(path string)
}

// CreateInput is a new testimonial; Image is optional.
type CreateInput struct {
	Author  string
	Role    string
	Country string
	Text    string
	Image   *multipart.FileHeader
}

// UpdateInput carries a partial update. Empty fields keep the stored value.
type UpdateInput struct {
	Author  string
	Role    string
	Country string
	Text    string
	Type    string
	Image   *multipart.FileHeader
}

// Service defines the testimonial operations used by the handler layer.
type Service struct {
	repo   repository.Repository
	images ImageStore
	now    func() time.Time
}

func New(repo repository.Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images, now: time.Now}
}

// ParseID validates a hex ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// Create validates the required fields before anything touches disk, then
// stores the image (if any) and the document.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Testimonial, error) {
	t := &models.Testimonial{
		Author:    in.Author,
		Role:      in.Role,
		Country:   in.Country,
		Text:      in.Text,
		CreatedAt: s.now(),
	}
	if missing := t.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	if in.Image != nil {
		path, err := s.images.Save(in.Image)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		t.Image = path
	}
	if err := s.repo.Create(ctx, t); err != nil {
		// the document never existed, so its file must not linger
		s.images.RemoveBestEffort(t.Image)
		return nil, err
	}
	logger.Infof("testimonial created id=%s image=%v", t.ID.Hex(), t.Image != "")
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]models.Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Testimonial, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.get(ctx, oid)
}

func (s *Service) get(ctx context.Context, oid primitive.ObjectID) (*models.Testimonial, error) {
	t, err := s.repo.Get(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, oid.Hex())
		}
		return nil, err
	}
	return t, nil
}

// Update merges in over the stored testimonial. A replaced image is removed
// best-effort once the new document is stored.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*models.Testimonial, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	existing, err := s.get(ctx, oid)
	if err != nil {
		return nil, err
	}

	patch := models.TestimonialPatch{
		Author:  in.Author,
		Role:    in.Role,
		Country: in.Country,
		Text:    in.Text,
		Type:    in.Type,
	}
	if in.Image != nil {
		path, err := s.images.Save(in.Image)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		patch.Image = path
	}

	updated := patch.Apply(*existing, s.now())
	if err := s.repo.Update(ctx, &updated); err != nil {
		s.images.RemoveBestEffort(patch.Image)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, oid.Hex())
		}
		return nil, err
	}
	if patch.Image != "" && existing.Image != "" && existing.Image != patch.Image {
		s.images.RemoveBestEffort(existing.Image)
	}
	return &updated, nil
}

// Delete removes the image file (best-effort) and then the document.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	existing, err := s.get(ctx, oid)
	if err != nil {
		return err
	}
	s.images.RemoveBestEffort(existing.Image)
	if err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, oid.Hex())
		}
		return err
	}
	return nil
}
