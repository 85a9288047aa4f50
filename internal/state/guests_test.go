package state

import (
	"context"
	"testing"

	"github.com/vowsync/vowsync/internal/models"
)

type fakeGuestsAPI struct {
	guests []models.Guest
	// added records the status the server was asked for, to assert the
	// request carries it even though the local record never does.
	added  []models.GuestStatus
	nextID string
}

func (f *fakeGuestsAPI) ListGuests(ctx context.Context) ([]models.Guest, error) {
	out := make([]models.Guest, len(f.guests))
	copy(out, f.guests)
	return out, nil
}

func (f *fakeGuestsAPI) AddGuest(ctx context.Context, name, email string, status models.GuestStatus) (models.Guest, error) {
	f.added = append(f.added, status)
	return models.Guest{ID: f.nextID, Name: name, Email: email, Status: status}, nil
}

func TestGuestsSortCaseInsensitive(t *testing.T) {
	fake := &fakeGuestsAPI{guests: []models.Guest{
		{ID: "1", Name: "bob"},
		{ID: "2", Name: "Alice"},
		{ID: "3", Name: "adam"},
	}}
	store := NewGuestsStore(fake)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	var got []string
	for _, g := range store.All() {
		got = append(got, g.Name)
	}
	want := []string{"adam", "Alice", "bob"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() order = %v, want %v", got, want)
		}
	}
}

func TestGuestsSortIsStableForEqualNames(t *testing.T) {
	fake := &fakeGuestsAPI{guests: []models.Guest{
		{ID: "first", Name: "Sam"},
		{ID: "second", Name: "sam"},
	}}
	store := NewGuestsStore(fake)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	all := store.All()
	if all[0].ID != "first" || all[1].ID != "second" {
		t.Errorf("equal names reordered: %+v", all)
	}
}

func TestGuestsPartitionAndCounts(t *testing.T) {
	fake := &fakeGuestsAPI{guests: []models.Guest{
		{ID: "1", Name: "a", Status: models.GuestInvited},
		{ID: "2", Name: "b", Status: models.GuestAccepted},
		{ID: "3", Name: "c", Status: models.GuestDeclined},
		{ID: "4", Name: "d", Status: models.GuestAccepted},
	}}
	store := NewGuestsStore(fake)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := len(store.Confirmed()); got != 2 {
		t.Errorf("Confirmed() len = %d, want 2", got)
	}
	if got := len(store.Declined()); got != 1 {
		t.Errorf("Declined() len = %d, want 1", got)
	}
	total, confirmed, declined := store.Counts()
	if total != 4 || confirmed != 2 || declined != 1 {
		t.Errorf("Counts() = (%d, %d, %d), want (4, 2, 1)", total, confirmed, declined)
	}
}

func TestGuestsCreateAlwaysAppendsInvited(t *testing.T) {
	fake := &fakeGuestsAPI{nextID: "g1"}
	store := NewGuestsStore(fake)

	// Request accepted; the server sees accepted, the local record is
	// still invited.
	g, err := store.Create(context.Background(), "Eve", "eve@example.com", models.GuestAccepted)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Status != models.GuestInvited {
		t.Errorf("local status = %q, want invited", g.Status)
	}
	if len(fake.added) != 1 || fake.added[0] != models.GuestAccepted {
		t.Errorf("server saw status %v, want the requested accepted", fake.added)
	}
}

func TestGuestsCreateFallsBackToLocalID(t *testing.T) {
	fake := &fakeGuestsAPI{nextID: ""}
	store := NewGuestsStore(fake)

	g, err := store.Create(context.Background(), "Eve", "", models.GuestInvited)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID == "" {
		t.Error("Create() should synthesize an ID when the server omits one")
	}
}

func TestGuestsLocalMutations(t *testing.T) {
	fake := &fakeGuestsAPI{guests: []models.Guest{
		{ID: "1", Name: "a", Status: models.GuestInvited},
		{ID: "2", Name: "b", Status: models.GuestInvited},
	}}
	store := NewGuestsStore(fake)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	store.UpdateStatus("1", models.GuestAccepted)
	if got := len(store.Confirmed()); got != 1 {
		t.Errorf("Confirmed() len = %d after update, want 1", got)
	}

	// Invalid status strings change nothing.
	store.UpdateStatus("2", models.GuestStatus("maybe"))
	total, confirmed, _ := store.Counts()
	if total != 2 || confirmed != 1 {
		t.Errorf("Counts() = (%d, %d, _) after invalid status, want (2, 1, _)", total, confirmed)
	}

	store.Remove("1")
	if total, _, _ := store.Counts(); total != 1 {
		t.Errorf("Counts() total = %d after remove, want 1", total)
	}
	store.Remove("missing")
	if total, _, _ := store.Counts(); total != 1 {
		t.Errorf("Counts() total = %d after removing unknown id, want 1", total)
	}
}
