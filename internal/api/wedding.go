package api

import (
	"context"
	"net/http"

	"github.com/vowsync/vowsync/internal/models"
)

type wireWeddingDetails struct {
	BrideName   string `json:"bride_name"`
	GroomName   string `json:"groom_name"`
	WeddingDate string `json:"wedding_date"`
	Location    string `json:"location"`
	Venue       string `json:"venue"`
	Time        string `json:"time"`
	GuestCount  int    `json:"guest_count"`
	DressCode   string `json:"dress_code"`
}

func (w wireWeddingDetails) model() models.WeddingDetails {
	return models.WeddingDetails{
		BrideName:   w.BrideName,
		GroomName:   w.GroomName,
		WeddingDate: w.WeddingDate,
		Location:    w.Location,
		Venue:       w.Venue,
		Time:        w.Time,
		GuestCount:  w.GuestCount,
		DressCode:   w.DressCode,
	}
}

// FetchWeddingDetails returns the user's wedding details records. The server
// replies with a list; an empty list means onboarding never happened, a
// decision the wedding store turns into ErrNotOnboarded.
func (c *Client) FetchWeddingDetails(ctx context.Context) ([]models.WeddingDetails, error) {
	var out struct {
		WeddingDetails []wireWeddingDetails `json:"weddingDetails"`
	}
	if err := c.do(ctx, http.MethodGet, "/weddingDetails/wedding-details", true, nil, &out); err != nil {
		return nil, err
	}
	details := make([]models.WeddingDetails, len(out.WeddingDetails))
	for i, w := range out.WeddingDetails {
		details[i] = w.model()
	}
	return details, nil
}

// SubmitWeddingDetails posts the onboarding form.
func (c *Client) SubmitWeddingDetails(ctx context.Context, d models.WeddingDetails) error {
	req := struct {
		BrideName   string `json:"brideName"`
		GroomName   string `json:"groomName"`
		WeddingDate string `json:"weddingDate"`
		Location    string `json:"location"`
		Venue       string `json:"venue"`
		Time        string `json:"time"`
		GuestCount  int    `json:"guestCount"`
		DressCode   string `json:"dressCode"`
	}{
		BrideName:   d.BrideName,
		GroomName:   d.GroomName,
		WeddingDate: d.WeddingDate,
		Location:    d.Location,
		Venue:       d.Venue,
		Time:        d.Time,
		GuestCount:  d.GuestCount,
		DressCode:   d.DressCode,
	}
	return c.do(ctx, http.MethodPost, "/weddingDetails/wedding-details", true, req, nil)
}
