package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vowsync/vowsync/internal/models"
)

// ListGuests returns the user's guest list in insertion order.
func (s *SQLiteStore) ListGuests(ctx context.Context, userID string) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, status FROM guests WHERE user_id = ? ORDER BY rowid", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guests: %w", err)
	}
	defer rows.Close()

	guests := make([]models.Guest, 0)
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Status); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

// CreateGuest persists a new guest, generating its ID. Unknown statuses
// are normalized to invited.
func (s *SQLiteStore) CreateGuest(ctx context.Context, userID string, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	if !guest.Status.Valid() {
		guest.Status = models.GuestInvited
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO guests (id, user_id, name, email, status) VALUES (?, ?, ?, ?, ?)",
		guest.ID, userID, guest.Name, guest.Email, string(guest.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}
	return nil
}
