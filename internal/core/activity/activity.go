// Package activity defines the activity domain types shared by the client,
// the board controller and the development server.
package activity

import "slices"

// Activity is a signup-able event with a participant capacity. Name is the
// sole identifier used in requests to the service.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns capacity minus the current participant count. It is
// derived on every call and may be negative if the service over-filled it.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// IsFull returns true when no spots remain.
func (a Activity) IsFull() bool {
	return a.SpotsLeft() <= 0
}

// HasParticipant reports whether email is registered for the activity.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// AddParticipant registers email, enforcing capacity and uniqueness.
// Capacity is checked first.
func (a *Activity) AddParticipant(email string) error {
	if a.IsFull() {
		return ErrFull
	}
	if a.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant unregisters email.
func (a *Activity) RemoveParticipant(email string) error {
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}
