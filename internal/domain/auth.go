package domain

import "time"

// AuthState is a snapshot of the authentication state: whether a session
// is active, who holds it, and the current standing of the login throttle.
type AuthState struct {
	// Authenticated is true while a session is active.
	Authenticated bool `json:"authenticated"`

	// User is the account holding the session, nil when logged out.
	User *UserAccount `json:"user,omitempty"`

	// FailedAttempts counts consecutive failed logins since the last
	// success or unlock.
	FailedAttempts int `json:"failed_attempts"`

	// Locked is true while login is suppressed after repeated failures.
	Locked bool `json:"locked"`

	// LockedSince is the instant the lockout began, nil when not locked.
	LockedSince *time.Time `json:"locked_since,omitempty"`
}
