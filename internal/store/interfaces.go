// Package store implements the local persisted state of the identity
// supervisor: the per-account registration-state slot, the client-set table
// mirroring the server's view, and the account record with its cached
// password. Backed by SQLite with goose migrations.
package store

import (
	"context"

	"github.com/MKhiriev/go-ident-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RegistrationStateRepository is the per-account key/value slot holding the
// registration state. Read at startup, written on every transition. The
// account supervisor is the sole writer.
type RegistrationStateRepository interface {
	// Get returns the persisted registration state for userID. If no state
	// has ever been written, the Unregistered state is returned.
	Get(ctx context.Context, userID string) (models.RegistrationState, error)

	// Put durably persists state for userID, replacing any previous value.
	Put(ctx context.Context, userID string, state models.RegistrationState) error
}

// ClientRepository stores the locally cached set of clients known to be
// registered for each account.
type ClientRepository interface {
	// ReplaceAll overwrites the cached client set of userID with the
	// authoritative server list. The previous cache is discarded, not merged.
	ReplaceAll(ctx context.Context, userID string, clients []models.Client) error

	// Insert adds one client to the cached set without touching the rest.
	// Used to persist the canonical record of a freshly registered client.
	Insert(ctx context.Context, client models.Client) error

	// ListByUser returns the cached client set of userID.
	ListByUser(ctx context.Context, userID string) ([]models.Client, error)

	// Delete removes one client from the cached set. Returns
	// [ErrClientNotFound] if the client is not in the cache.
	Delete(ctx context.Context, userID, clientID string) error
}

// AccountRepository stores the local account record, including the cached
// password the supervisor falls back to when no password is supplied.
type AccountRepository interface {
	// Get returns the account record for userID. Returns
	// [ErrNoAccountWasFound] if the account has not been persisted.
	Get(ctx context.Context, userID string) (models.User, error)

	// Save upserts the account record.
	Save(ctx context.Context, user models.User) error
}
