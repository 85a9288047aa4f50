package models

// WeddingDetails is the singleton record describing the wedding itself.
// Exactly one instance exists per authenticated user; it is created during
// onboarding and replaced wholesale on every fetch.
type WeddingDetails struct {
	BrideName string
	GroomName string

	// WeddingDate is the calendar date in "2006-01-02" form.
	WeddingDate string

	Location string
	Venue    string

	// Time is the ceremony time in "15:04:05" form.
	Time string

	GuestCount int
	DressCode  string
}

// Identity is the authenticated principal's display identity. The credential
// token itself is owned by the session's token store, never by this record.
type Identity struct {
	UserID string
	Email  string
}
