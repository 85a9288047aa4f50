package state

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vowsync/vowsync/internal/models"
)

// GuestsAPI is the slice of the REST client the guests store depends on.
type GuestsAPI interface {
	ListGuests(ctx context.Context) ([]models.Guest, error)
	AddGuest(ctx context.Context, name, email string, status models.GuestStatus) (models.Guest, error)
}

// GuestsStore owns the guest list.
type GuestsStore struct {
	api GuestsAPI

	mu     sync.Mutex
	rev    revisions
	guests []models.Guest
}

// NewGuestsStore creates an empty guests store over the given API.
func NewGuestsStore(api GuestsAPI) *GuestsStore {
	return &GuestsStore{api: api}
}

// Fetch replaces the guest list wholesale.
func (s *GuestsStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	guests, err := s.api.ListGuests(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rev.current(seq, ver) {
		return nil
	}
	s.guests = guests
	return nil
}

// Create posts a new guest and appends the result locally.
//
// The requested status is sent to the server as-is, but the local record is
// always appended with status invited, whatever was requested. The shipped
// mobile client has behaved this way since launch, so the behavior is kept
// until the product question (rule or bug?) is settled.
func (s *GuestsStore) Create(ctx context.Context, name, email string, requested models.GuestStatus) (models.Guest, error) {
	created, err := s.api.AddGuest(ctx, name, email, requested)
	if err != nil {
		return models.Guest{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Guest{}, err
	}

	guest := models.Guest{
		ID:     created.ID,
		Name:   created.Name,
		Email:  created.Email,
		Status: models.GuestInvited,
	}
	// The server is expected to issue the ID; fall back to a local UUID if
	// it ever omits one.
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.guests = append(s.guests, guest)
	return guest, nil
}

// Remove deletes a guest locally. There is no corresponding remote
// operation; the change lives until the next fetch.
func (s *GuestsStore) Remove(guestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == guestID {
			s.rev.bump()
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			return
		}
	}
}

// UpdateStatus changes a guest's RSVP state locally. Unknown IDs and
// unknown states are no-ops.
func (s *GuestsStore) UpdateStatus(guestID string, status models.GuestStatus) {
	if !status.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.guests {
		if s.guests[i].ID == guestID {
			s.rev.bump()
			s.guests[i].Status = status
			return
		}
	}
}

// All returns the guest list ordered case-insensitively by name. The sort
// is stable, so guests with equal names keep insertion order.
func (s *GuestsStore) All() []models.Guest {
	s.mu.Lock()
	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Confirmed returns the guests who accepted.
func (s *GuestsStore) Confirmed() []models.Guest {
	return s.byStatus(models.GuestAccepted)
}

// Declined returns the guests who declined.
func (s *GuestsStore) Declined() []models.Guest {
	return s.byStatus(models.GuestDeclined)
}

func (s *GuestsStore) byStatus(status models.GuestStatus) []models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Guest
	for _, g := range s.guests {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}

// Counts reports total, confirmed and declined guest numbers, derived by
// filtering on each call.
func (s *GuestsStore) Counts() (total, confirmed, declined int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		switch g.Status {
		case models.GuestAccepted:
			confirmed++
		case models.GuestDeclined:
			declined++
		}
	}
	return len(s.guests), confirmed, declined
}
