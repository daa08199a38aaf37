package models

import "time"

// User represents the self profile of a signed-in account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the account on the identity service.
	UserID string `json:"id"`

	// Handle is the human-readable account handle. May be empty.
	Handle string `json:"handle"`

	// Email is the address currently bound to the account. Empty until the
	// account has a verified address.
	Email string `json:"email"`

	// TeamID is the team the account belongs to, empty for personal accounts.
	TeamID string `json:"team,omitempty"`

	// Password is the locally cached account password. It is never exposed
	// via JSON and is updated only after the server has confirmed a change.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account record was first persisted
	// locally. Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "accounts"
}

// HasTeam reports whether the account belongs to a team.
func (u User) HasTeam() bool {
	return u.TeamID != ""
}
