package entity

import "time"

// RegistrationState is the derived workflow state of a (user, event) pair.
type RegistrationState string

const (
	RegistrationStateNotRegistered RegistrationState = "NOT_REGISTERED"
	RegistrationStateRegistered    RegistrationState = "REGISTERED"
	RegistrationStateCheckedIn     RegistrationState = "CHECKED_IN"
)

// Registration records that a user signed up for an event.
// There is at most one registration per (EventID, UserID).
type Registration struct {
	ID          string            `json:"id"`
	EventID     string            `json:"event_id"`
	UserID      string            `json:"user_id"`
	CheckedIn   bool              `json:"checked_in"`
	CheckedInAt *time.Time        `json:"checked_in_at,omitempty"`
	Responses   map[string]string `json:"responses,omitempty"` // Answers to the event's registration form.
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// State returns the workflow state represented by the registration.
// A nil registration means the user is not registered.
func (r *Registration) State() RegistrationState {
	switch {
	case r == nil:
		return RegistrationStateNotRegistered
	case r.CheckedIn:
		return RegistrationStateCheckedIn
	default:
		return RegistrationStateRegistered
	}
}
