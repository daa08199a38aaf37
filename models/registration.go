package models

// RegistrationKind identifies one variant of the closed [RegistrationState]
// set. The value determines which follow-up action the caller must take.
type RegistrationKind string

const (
	// RegistrationUnregistered means no cryptographic client has been
	// registered for this account yet. Initial state.
	RegistrationUnregistered RegistrationKind = "unregistered"

	// RegistrationPasswordMissing means the identity service requires
	// re-authentication with a password before a client can be registered.
	// The caller must prompt for a password and retry. Not an error.
	RegistrationPasswordMissing RegistrationKind = "password_missing"

	// RegistrationLimitReached means the account already holds the maximum
	// number of registered clients. The caller must prompt the user to remove
	// another client. Not an error.
	RegistrationLimitReached RegistrationKind = "limit_reached"

	// RegistrationRegistered means a usable cryptographic client exists.
	// Only in this state does a cryptographic session exist for the account.
	RegistrationRegistered RegistrationKind = "registered"
)

// RegistrationState is the authoritative record of whether this device has a
// usable cryptographic identity for one account. The persisted copy is the
// source of truth on restart; at most one Registered state exists per account.
type RegistrationState struct {
	// Kind selects the variant.
	Kind RegistrationKind `json:"kind"`

	// ClientID holds the identifier of the active client. Set only when
	// Kind is RegistrationRegistered.
	ClientID string `json:"client_id,omitempty"`

	// Version is the local schema/registration version stamped when the
	// transition into Registered was persisted.
	Version string `json:"version,omitempty"`
}

// Unregistered returns the initial registration state.
func Unregistered() RegistrationState {
	return RegistrationState{Kind: RegistrationUnregistered}
}

// PasswordMissing returns the re-authentication-required state.
func PasswordMissing() RegistrationState {
	return RegistrationState{Kind: RegistrationPasswordMissing}
}

// LimitReached returns the too-many-clients state.
func LimitReached() RegistrationState {
	return RegistrationState{Kind: RegistrationLimitReached}
}

// Registered returns the registered state for clientID stamped with version.
func Registered(clientID, version string) RegistrationState {
	return RegistrationState{Kind: RegistrationRegistered, ClientID: clientID, Version: version}
}

// IsRegistered reports whether the state holds a usable client.
func (s RegistrationState) IsRegistered() bool {
	return s.Kind == RegistrationRegistered
}
