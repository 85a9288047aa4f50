package models

// GuestStatus is the RSVP state of a guest.
type GuestStatus string

const (
	GuestInvited  GuestStatus = "invited"
	GuestAccepted GuestStatus = "accepted"
	GuestDeclined GuestStatus = "declined"
)

// Valid reports whether s is one of the known RSVP states.
func (s GuestStatus) Valid() bool {
	switch s {
	case GuestInvited, GuestAccepted, GuestDeclined:
		return true
	}
	return false
}

// Guest represents one invitee on the guest list.
type Guest struct {
	// ID is the unique identifier for the guest (UUID).
	ID string

	// Name is the guest's display name.
	Name string

	// Email is the guest's contact address.
	Email string

	// Status is the RSVP state. Newly created guests always start invited.
	Status GuestStatus
}
