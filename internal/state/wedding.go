package state

import (
	"context"
	"sync"

	"github.com/vowsync/vowsync/internal/api"
	"github.com/vowsync/vowsync/internal/models"
)

// WeddingAPI is the slice of the REST client the wedding store depends on.
type WeddingAPI interface {
	FetchWeddingDetails(ctx context.Context) ([]models.WeddingDetails, error)
	SubmitWeddingDetails(ctx context.Context, d models.WeddingDetails) error
}

// WeddingStore owns the singleton wedding details record. Details are
// expected to pre-exist after onboarding; there is no create operation here
// beyond the onboarding submit itself.
type WeddingStore struct {
	api WeddingAPI

	mu        sync.Mutex
	rev       revisions
	details   models.WeddingDetails
	onboarded bool
}

// NewWeddingStore creates an empty wedding store over the given API.
func NewWeddingStore(api WeddingAPI) *WeddingStore {
	return &WeddingStore{api: api}
}

// Fetch replaces the record wholesale with the first element of the
// server's list. An empty list means the user never onboarded: the store
// keeps whatever it had and returns api.ErrNotOnboarded for routing logic
// to branch on.
func (s *WeddingStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	seq, ver := s.rev.begin()
	s.mu.Unlock()

	list, err := s.api.FetchWeddingDetails(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(list) == 0 {
		return api.ErrNotOnboarded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.rev.current(seq, ver) {
		return nil
	}
	s.details = list[0]
	s.onboarded = true
	return nil
}

// Submit posts the onboarding form and, on success, adopts it locally.
func (s *WeddingStore) Submit(ctx context.Context, d models.WeddingDetails) error {
	if d.BrideName == "" && d.GroomName == "" {
		return &api.ValidationError{Field: "names", Reason: "at least one partner name is required"}
	}
	if d.WeddingDate == "" {
		return &api.ValidationError{Field: "weddingDate", Reason: "required"}
	}

	if err := s.api.SubmitWeddingDetails(ctx, d); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.details = d
	s.onboarded = true
	return nil
}

// Details returns a snapshot of the record.
func (s *WeddingStore) Details() models.WeddingDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details
}

// Onboarded reports whether a record has been fetched or submitted.
func (s *WeddingStore) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onboarded
}

// Location returns the wedding location.
func (s *WeddingStore) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.details.Location
}

// The setters below mutate a single field locally without a remote call;
// the server copy is untouched until a future sync.

// SetLocation updates the location field.
func (s *WeddingStore) SetLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.details.Location = location
}

// SetTime updates the ceremony time field.
func (s *WeddingStore) SetTime(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.details.Time = t
}

// SetGuestCount updates the expected guest count field.
func (s *WeddingStore) SetGuestCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.details.GuestCount = n
}

// SetDressCode updates the dress code field.
func (s *WeddingStore) SetDressCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rev.bump()
	s.details.DressCode = code
}
