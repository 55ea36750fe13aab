package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/mergington/activities/internal/model"
)

// Storage-level sentinel errors. The service layer translates these into its
// own error vocabulary.
var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrDuplicateParticipant = errors.New("participant already registered")
	ErrParticipantNotFound  = errors.New("participant not registered")
)

// ActivityDirectory holds the in-memory mapping from activity name to
// Activity record. Activities are never created or deleted at runtime; only
// their participant rosters change.
type ActivityDirectory struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewActivityDirectory creates a directory populated with the given seed.
// Seed records are copied, so the caller's slice stays untouched.
func NewActivityDirectory(seed []*model.Activity) *ActivityDirectory {
	d := &ActivityDirectory{}
	d.load(seed)
	return d
}

func (d *ActivityDirectory) load(seed []*model.Activity) {
	d.activities = make(map[string]*model.Activity, len(seed))
	for _, a := range seed {
		d.activities[a.Name] = a.Clone()
	}
}

// List returns a snapshot of every activity keyed by name.
func (d *ActivityDirectory) List(ctx context.Context) (map[string]*model.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]*model.Activity, len(d.activities))
	for name, a := range d.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a snapshot of a single activity, or ErrActivityNotFound.
func (d *ActivityDirectory) Get(ctx context.Context, name string) (*model.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// AddParticipant appends email to the activity's roster. The existence and
// duplicate checks happen under the same lock as the append.
func (d *ActivityDirectory) AddParticipant(ctx context.Context, activity, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.activities[activity]
	if !ok {
		return ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return ErrDuplicateParticipant
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes exactly the matching email from the roster,
// preserving the order of the remaining entries.
func (d *ActivityDirectory) RemoveParticipant(ctx context.Context, activity, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.activities[activity]
	if !ok {
		return ErrActivityNotFound
	}
	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

// Reset replaces the directory contents with the given seed. Tests use this
// to restore a known starting state between runs.
func (d *ActivityDirectory) Reset(seed []*model.Activity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.load(seed)
}
