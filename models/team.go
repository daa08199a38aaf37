package models

import "time"

// TeamInvitation identifies one invitation of a person into a team.
// The full value is the identity under which outcomes are recorded.
type TeamInvitation struct {
	// TeamID is the inviting team.
	TeamID string `json:"team"`

	// Email is the address being invited.
	Email string `json:"email"`

	// Name is the display name to put on the invitation.
	Name string `json:"invitee_name"`

	// Locale is an optional BCP-47 language tag for the invitation mail.
	Locale string `json:"locale,omitempty"`
}

// TeamInvitationConfirmation is the server acknowledgement of a sent
// invitation.
type TeamInvitationConfirmation struct {
	// ID is the server-side invitation identifier.
	ID string `json:"id"`

	// Email echoes the invited address.
	Email string `json:"email"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// InvitationResult is the recorded outcome of one invitation attempt:
// either a confirmation or the error the attempt produced. Exactly one of
// the two fields is set.
type InvitationResult struct {
	Confirmation *TeamInvitationConfirmation
	Err          error
}
