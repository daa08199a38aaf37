package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ident-keeper/models"
)

// InviteToTeam implements [AccountSupervisor]. The outcome is recorded in
// the process-lifetime invitation log whether the server accepted the
// invitation or not, so repeated attempts stay observable.
func (s *accountSupervisor) InviteToTeam(ctx context.Context, email, name, locale string) (models.TeamInvitationConfirmation, error) {
	account, err := s.localStore.Accounts.Get(ctx, s.userID)
	if err != nil {
		return models.TeamInvitationConfirmation{}, fmt.Errorf("%w: %v", ErrNotTeamAccount, err)
	}
	if !account.HasTeam() {
		return models.TeamInvitationConfirmation{}, ErrNotTeamAccount
	}

	inv := models.TeamInvitation{
		TeamID: account.TeamID,
		Email:  email,
		Name:   name,
		Locale: locale,
	}

	confirmation, err := s.adapter.InviteTeamMember(ctx, inv)
	if err != nil {
		s.recordInvitation(inv, models.InvitationResult{Err: err})
		return models.TeamInvitationConfirmation{}, err
	}

	s.recordInvitation(inv, models.InvitationResult{Confirmation: &confirmation})
	return confirmation, nil
}

// Invitations implements [AccountSupervisor].
func (s *accountSupervisor) Invitations() []RecordedInvitation {
	s.invMu.Lock()
	defer s.invMu.Unlock()

	recorded := make([]RecordedInvitation, 0, len(s.invOrder))
	for _, inv := range s.invOrder {
		recorded = append(recorded, RecordedInvitation{Invitation: inv, Result: s.invitations[inv]})
	}
	return recorded
}

func (s *accountSupervisor) recordInvitation(inv models.TeamInvitation, result models.InvitationResult) {
	s.invMu.Lock()
	defer s.invMu.Unlock()

	if _, seen := s.invitations[inv]; !seen {
		s.invOrder = append(s.invOrder, inv)
	}
	s.invitations[inv] = result
}
