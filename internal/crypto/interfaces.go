// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the local crypto identity gateway: it creates
// and destroys the device-bound cryptographic client material and answers
// session/fingerprint lookups. The account supervisor only calls this
// gateway and interprets results; key formats stay private to this package.
package crypto

import "github.com/MKhiriev/go-ident-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_gateway_mock.go -package=mock

// IdentityGateway defines the contract between the account supervisor and
// the local cryptographic state.
type IdentityGateway interface {
	// CreateClientMaterial generates a fresh client key bundle: the client
	// skeleton, the last-resort prekey, and a batch of one-time prekeys.
	// Returns (nil, nil) when no usable cryptographic context exists on this
	// device; the caller must treat that as a local integrity fault, not a
	// transient condition. Returns an error only when key generation itself
	// fails.
	CreateClientMaterial() (*models.ClientKeyMaterial, error)

	// DeleteLocalIdentity destroys all local cryptographic state: identity
	// keys, prekeys, and established sessions. Idempotent; deleting an
	// already-absent identity is not an error.
	DeleteLocalIdentity() error

	// Fingerprint returns the stored identity-key fingerprint of the remote
	// client (userID, clientID). Returns [ErrSessionNotFound] if no session
	// with that client exists.
	Fingerprint(userID, clientID string) (string, error)

	// HasSession reports whether an established session with the remote
	// client (userID, clientID) exists locally.
	HasSession(userID, clientID string) (bool, error)
}
