package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/storage"
)

// GetWeddingDetails returns the user's singleton record, ErrNotFound when
// onboarding never happened.
func (s *SQLiteStore) GetWeddingDetails(ctx context.Context, userID string) (*models.WeddingDetails, error) {
	var d models.WeddingDetails
	err := s.db.QueryRowContext(ctx,
		`SELECT bride_name, groom_name, wedding_date, location, venue, time, guest_count, dress_code
		 FROM wedding_details WHERE user_id = ?`, userID,
	).Scan(&d.BrideName, &d.GroomName, &d.WeddingDate, &d.Location, &d.Venue, &d.Time, &d.GuestCount, &d.DressCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query wedding details: %w", err)
	}
	return &d, nil
}

// UpsertWeddingDetails creates or replaces the singleton record.
func (s *SQLiteStore) UpsertWeddingDetails(ctx context.Context, userID string, d *models.WeddingDetails) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO wedding_details
		   (user_id, bride_name, groom_name, wedding_date, location, venue, time, guest_count, dress_code)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   bride_name = excluded.bride_name,
		   groom_name = excluded.groom_name,
		   wedding_date = excluded.wedding_date,
		   location = excluded.location,
		   venue = excluded.venue,
		   time = excluded.time,
		   guest_count = excluded.guest_count,
		   dress_code = excluded.dress_code`,
		userID, d.BrideName, d.GroomName, d.WeddingDate, d.Location, d.Venue, d.Time, d.GuestCount, d.DressCode,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert wedding details: %w", err)
	}
	return nil
}
