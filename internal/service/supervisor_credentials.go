package service

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-retry"
)

// SetEmail implements [AccountSupervisor]. Thin pass-through: the address
// stays pending on the server until activated.
func (s *accountSupervisor) SetEmail(ctx context.Context, email string) error {
	return s.adapter.UpdateEmail(ctx, email)
}

// SetPassword implements [AccountSupervisor]. The cached local password is
// updated only after the server has confirmed the change, so a stale local
// password can never diverge from the server's.
func (s *accountSupervisor) SetPassword(ctx context.Context, password string) error {
	if err := s.adapter.UpdatePassword(ctx, password); err != nil {
		return err
	}

	account, err := s.localStore.Accounts.Get(ctx, s.userID)
	if err != nil {
		// no local record yet; nothing cached to update
		return nil
	}

	account.Password = password
	if err = s.localStore.Accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("cache updated password: %w", err)
	}

	return nil
}

// CheckEmailActivation implements [AccountSupervisor]. The poll re-queries
// the self profile at the configured fixed interval; a non-matching response
// is a legitimate "not yet" and continues polling, a query error terminates
// the loop and surfaces, and cancelling ctx stops the poll without side
// effects.
func (s *accountSupervisor) CheckEmailActivation(ctx context.Context, email string) error {
	backoff := retry.NewConstant(s.pollInterval)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		self, err := s.adapter.GetSelf(ctx)
		if err != nil {
			return err // terminal, surfaced to the caller
		}
		if self.Email != email {
			return retry.RetryableError(errNotYetActivated)
		}
		return nil
	})
}
