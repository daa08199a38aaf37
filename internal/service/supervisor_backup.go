package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-ident-keeper/internal/store"
	"github.com/MKhiriev/go-ident-keeper/models"
)

// ExportDatabase implements [AccountSupervisor]. The handle used in the
// archive name falls back to empty when the account has none; the archive
// itself is produced by the backup exporter under the store's exclusive
// file guard.
func (s *accountSupervisor) ExportDatabase(ctx context.Context) (string, error) {
	account, err := s.localStore.Accounts.Get(ctx, s.userID)
	if err != nil {
		if !errors.Is(err, store.ErrNoAccountWasFound) {
			return "", err
		}
		account = models.User{UserID: s.userID}
	}

	state, err := s.CurrentState(ctx)
	if err != nil {
		return "", err
	}

	return s.exporter.Export(account, state)
}
