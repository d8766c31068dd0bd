package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flyambition/flyambition-api/internal/models"
	"github.com/flyambition/flyambition-api/internal/submission/repository"
	"github.com/flyambition/flyambition-api/pkg/logger"
	"github.com/flyambition/flyambition-api/pkg/metrics"
)

var (
	ErrValidation   = errors.New("required fields missing")
	ErrNotification = errors.New("notification failed")
)

// Notifier sends the email that accompanies each stored submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, kind models.SubmissionKind, sub models.Submission) error
}

// Service handles one kind of form: validate, store, notify.
type Service struct {
	kind     models.SubmissionKind
	repo     repository.Repository
	notifier Notifier
}

func New(kind models.SubmissionKind, repo repository.Repository, notifier Notifier) *Service {
	return &Service{kind: kind, repo: repo, notifier: notifier}
}

// Submit stores sub unmodified and then emails it together with its new id. A failed email is
// reported as an error although the document stays stored.
func (s *Service) Submit(ctx context.Context, sub models.Submission) error {
	if missing := sub.Missing(s.kind.RequiredFields()...); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, ", "))
	}
	id, err := s.repo.Insert(ctx, sub)
	if err != nil {
		return fmt.Errorf("store %s submission: %w", s.kind, err)
	}
	metrics.SubmissionsStored.WithLabelValues(string(s.kind)).Inc()
	logger.Infof("%s submission stored id=%s", s.kind, id.Hex())

	// the email carries the stored id like the document does
	if err := s.notifier.NotifySubmission(ctx, s.kind, sub.WithID(id)); err != nil {
		return fmt.Errorf("%w for %s submission %s: %v", ErrNotification, s.kind, id.Hex(), err)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]models.Submission, error) {
	return s.repo.List(ctx)
}
