// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the per-account supervisor that owns the
// device's cryptographic client identity: registration against the remote
// identity service, durable registration state, reaction to server-side
// revocation, credential updates, team invitations, and database export.
package service

import (
	"context"

	"github.com/MKhiriev/go-ident-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountSupervisor is the single authority, per account, for client
// identity lifecycle, credential updates, team invitations, and backup
// export. One instance exists per signed-in account for the lifetime of
// that session. All operations of one instance run against a single account;
// different accounts get independent instances.
type AccountSupervisor interface {
	// GetOrRegisterClient returns the account's registration state,
	// registering a new client if none exists. Concurrent calls collapse
	// into at most one in-flight registration; later callers receive the
	// same outcome. If the persisted state is already Registered the call
	// returns immediately without touching the network. Otherwise the
	// server's client list replaces the local cache before registration
	// proceeds; a failed list fetch is propagated without attempting
	// registration.
	GetOrRegisterClient(ctx context.Context, password string) (models.RegistrationState, error)

	// RegisterNewClient registers a new client unconditionally, bypassing
	// the fast path and the single-flight guard. Intended for test and
	// debug tooling; callers must ensure they do not race a concurrent
	// GetOrRegisterClient. The rejections "authentication missing" and
	// "too many clients" are returned as PasswordMissing and LimitReached
	// states, not errors; any other rejection is propagated with no state
	// transition.
	RegisterNewClient(ctx context.Context, password string) (models.RegistrationState, error)

	// DeleteClient removes the client identified by clientID from the
	// account, re-authenticating with password. The client must be present
	// in the locally cached client set; otherwise an internal error is
	// returned without contacting the network. On remote success the client
	// is removed from the local cache; on remote failure the cache is left
	// unchanged.
	DeleteClient(ctx context.Context, clientID, password string) error

	// SetEmail requests a change of the account's email address.
	SetEmail(ctx context.Context, email string) error

	// SetPassword changes the account password on the server and, only
	// after remote confirmation, updates the locally cached password.
	SetPassword(ctx context.Context, password string) error

	// CheckEmailActivation polls the self profile at a fixed interval until
	// the observed email equals email. A non-matching successful response
	// continues the poll; a query error terminates it and is surfaced.
	// Cancelling ctx stops the poll without side effects.
	CheckEmailActivation(ctx context.Context, email string) error

	// InviteToTeam posts a team invitation. Fails with [ErrNotTeamAccount]
	// before any network call when the account has no team. The outcome —
	// confirmation or error — is recorded in the invitation log either way.
	InviteToTeam(ctx context.Context, email, name, locale string) (models.TeamInvitationConfirmation, error)

	// Invitations returns the invitations sent during this process lifetime
	// with their recorded outcomes, in insertion order.
	Invitations() []RecordedInvitation

	// ExportDatabase produces a portable archive of the account's local
	// database and returns its path. Failures carry the typed backup error.
	ExportDatabase(ctx context.Context) (string, error)

	// CurrentState returns the account's registration state, reading the
	// persisted copy on first use.
	CurrentState(ctx context.Context) (models.RegistrationState, error)

	// Logout tears down the account's cryptographic identity: local key
	// material and sessions are destroyed and the persisted registration
	// state is reset to Unregistered. Idempotent; a second logout in quick
	// succession is a no-op.
	Logout(ctx context.Context, reason string) error

	// RefreshClientSet fetches the server's authoritative client list,
	// replaces the local cache with it, and publishes the result to
	// client-set subscribers. Callers (a periodic job, an external sync
	// layer) drive this to keep the liveness monitor's view current.
	RefreshClientSet(ctx context.Context) error

	// SubscribeClientSet subscribes to the locally cached client set. Every
	// authoritative replace from the server is published; delivery is
	// last-write-wins. The returned cancel function ends the subscription.
	SubscribeClientSet() (<-chan []models.Client, func())
}

// RecordedInvitation pairs an invitation with its recorded outcome.
type RecordedInvitation struct {
	Invitation models.TeamInvitation
	Result     models.InvitationResult
}

// Tracker receives analytics events emitted by the supervisor and the
// liveness monitor.
type Tracker interface {
	// ClientRevoked records that the account's registered client vanished
	// from the server-known client set.
	ClientRevoked(userID, clientID string)
}

// LivenessMonitor watches the account's registered client against the
// server-known client set and triggers logout when the client disappears.
type LivenessMonitor interface {
	// Start launches the monitoring goroutine. Any previously running
	// monitor is stopped first. The goroutine exits when ctx is cancelled
	// or Stop is called.
	Start(ctx context.Context)

	// Stop signals the monitoring goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the monitor is not running.
	Stop()
}
