package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/repository"
)

// ActivityRepository defines the interface for activity storage
type ActivityRepository interface {
	List(ctx context.Context) (map[string]*model.Activity, error)
	Get(ctx context.Context, name string) (*model.Activity, error)
	AddParticipant(ctx context.Context, activity, email string) error
	RemoveParticipant(ctx context.Context, activity, email string) error
}

// ActivityService handles activity signup business logic
type ActivityService struct {
	repo ActivityRepository
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	ActivityRepo ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{repo: cfg.ActivityRepo}
}

// ListActivities retrieves every activity keyed by name.
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity retrieves a single activity by name.
func (s *ActivityService) GetActivity(ctx context.Context, name string) (*model.Activity, error) {
	a, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return a, nil
}

// Signup registers email for the named activity and returns a confirmation
// message. The activity must exist and the email must not already be on the
// roster; the store performs both checks atomically with the append.
func (s *ActivityService) Signup(ctx context.Context, activity, email string) (string, error) {
	if err := s.repo.AddParticipant(ctx, activity, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return "", ErrActivityNotFound
		case errors.Is(err, repository.ErrDuplicateParticipant):
			return "", ErrAlreadySignedUp
		default:
			return "", err
		}
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity's roster and returns a
// confirmation message. The email must currently be registered.
func (s *ActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activity, email); err != nil {
		switch {
		case errors.Is(err, repository.ErrActivityNotFound):
			return "", ErrActivityNotFound
		case errors.Is(err, repository.ErrParticipantNotFound):
			return "", ErrNotSignedUp
		default:
			return "", err
		}
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}
