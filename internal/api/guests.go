package api

import (
	"context"
	"net/http"

	"github.com/vowsync/vowsync/internal/models"
)

type wireGuest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

func (w wireGuest) model() models.Guest {
	return models.Guest{
		ID:     w.ID,
		Name:   w.Name,
		Email:  w.Email,
		Status: models.GuestStatus(w.Status),
	}
}

// ListGuests fetches the full guest list.
func (c *Client) ListGuests(ctx context.Context) ([]models.Guest, error) {
	var out struct {
		Guests []wireGuest `json:"guests"`
	}
	if err := c.do(ctx, http.MethodGet, "/guests/guests", true, nil, &out); err != nil {
		return nil, err
	}
	guests := make([]models.Guest, len(out.Guests))
	for i, w := range out.Guests {
		guests[i] = w.model()
	}
	return guests, nil
}

// AddGuest creates a guest and returns the server's record. The requested
// status is sent as-is; what the local store does with it is its business.
func (c *Client) AddGuest(ctx context.Context, name, email string, status models.GuestStatus) (models.Guest, error) {
	req := struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}{Name: name, Email: email, Status: string(status)}

	var out struct {
		Guest wireGuest `json:"guest"`
	}
	if err := c.do(ctx, http.MethodPost, "/guests/add-guest", true, req, &out); err != nil {
		return models.Guest{}, err
	}
	return out.Guest.model(), nil
}
