package models

import "time"

// Client represents one cryptographic client bound to a device/installation
// of an account, as known to the identity service.
type Client struct {
	// ID is the opaque identifier assigned by the identity service.
	ID string `json:"id"`

	// UserID is the account the client belongs to.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID string `json:"-"`

	// Label is a human-readable device label (e.g. hostname).
	Label string `json:"label"`

	// Model is the device model/platform string reported at registration.
	Model string `json:"model"`

	// Fingerprint is the public identity-key fingerprint of the client.
	Fingerprint string `json:"fingerprint,omitempty"`

	// RegisteredAt is the server-side registration timestamp.
	RegisteredAt time.Time `json:"registered_at"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// PreKey is a single one-time public prekey uploaded at registration so other
// parties can establish sessions with this client while it is offline.
type PreKey struct {
	// ID is the prekey slot number.
	ID int `json:"id"`

	// Key is the base64-encoded public key material.
	Key string `json:"key"`
}

// ClientKeyMaterial is the bundle produced by the crypto identity gateway for
// a new client: the client skeleton plus the prekeys to publish.
type ClientKeyMaterial struct {
	// Client is the locally generated client record. ID is assigned by the
	// server; Fingerprint and Model are filled in locally.
	Client Client

	// LastResortKey is the permanent fallback prekey (fixed maximum slot).
	LastResortKey PreKey

	// PreKeys is the batch of one-time prekeys generated for upload.
	PreKeys []PreKey
}

// RegisterClientRequest is the payload submitted to the identity service to
// bind locally generated key material to the account.
type RegisterClientRequest struct {
	// UserID is the account performing the registration.
	UserID string `json:"user_id"`

	// Label and Model describe the device.
	Label string `json:"label"`
	Model string `json:"model"`

	// LastResortKey and PreKeys are the public key material being published.
	LastResortKey PreKey   `json:"lastkey"`
	PreKeys       []PreKey `json:"prekeys"`

	// Password is the account password when the service demands
	// re-authentication. Empty when no password is available.
	Password string `json:"password,omitempty"`
}
