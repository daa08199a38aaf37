package service

import "errors"

var (
	// ErrInternal marks a local invariant violation — a programming or
	// data-integrity fault, never a transient remote condition. Wrapped with
	// detail at each site (missing crypto context, unknown client, ...).
	ErrInternal = errors.New("internal error")

	// ErrNotTeamAccount is returned by InviteToTeam when the account does
	// not belong to a team. No network call is made.
	ErrNotTeamAccount = errors.New("not a team account")

	// errNotYetActivated drives the activation poll: a successful "who am I"
	// query whose email does not match is not a failure, just not yet done.
	errNotYetActivated = errors.New("email not yet activated")
)
