// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote identity service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// server error labels by mapHTTPError so that callers can use [errors.Is]
// for transport-agnostic error handling (e.g. [ErrTooManyClients] for the
// "too-many-clients" rejection label, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ident-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the identity
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// ListClients fetches the authoritative list of clients currently
	// registered for the account. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	ListClients(ctx context.Context, userID string) ([]models.Client, error)

	// RegisterClient submits locally generated public key material to bind a
	// new client to the account. Returns the server-assigned client record on
	// success. Rejections are mapped to [ErrMissingAuth] (re-authentication
	// required) and [ErrTooManyClients] (client limit reached); any other
	// rejection is returned as a status-based sentinel. No retries are
	// performed at this layer.
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (models.Client, error)

	// DeleteClient removes the client identified by clientID from the
	// account, re-authenticating with password. Returns an error if the
	// request fails or the server rejects it.
	DeleteClient(ctx context.Context, clientID, password string) error

	// UpdateEmail requests a change of the account's email address. The new
	// address stays pending until activated.
	UpdateEmail(ctx context.Context, email string) error

	// UpdatePassword changes the account password on the server.
	UpdatePassword(ctx context.Context, password string) error

	// GetSelf fetches the account's own profile record.
	GetSelf(ctx context.Context) (models.User, error)

	// InviteTeamMember posts a team invitation and returns the server
	// confirmation. The caller is responsible for verifying that the account
	// belongs to a team.
	InviteTeamMember(ctx context.Context, inv models.TeamInvitation) (models.TeamInvitationConfirmation, error)
}
