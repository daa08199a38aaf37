package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-ident-keeper/internal/adapter"
	"github.com/MKhiriev/go-ident-keeper/internal/backup"
	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/crypto"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/internal/store"
	"github.com/MKhiriev/go-ident-keeper/models"
)

type accountSupervisor struct {
	userID string

	// device descriptors submitted with a client registration
	label   string
	model   string
	version string

	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	gateway    crypto.IdentityGateway
	exporter   *backup.Exporter

	pollInterval time.Duration

	// regFlight collapses concurrent registration attempts per account key.
	regFlight singleflight.Group

	// stateMu guards the in-memory mirror of the persisted state. The
	// persisted copy is written first on every transition.
	stateMu     sync.Mutex
	state       models.RegistrationState
	stateLoaded bool

	clientSet *signal[[]models.Client]

	invMu       sync.Mutex
	invOrder    []models.TeamInvitation
	invitations map[models.TeamInvitation]models.InvitationResult

	logoutMu sync.Mutex

	logger *logger.Logger
}

// NewAccountSupervisor constructs the [AccountSupervisor] for one signed-in
// account. label and model describe this device on the identity service.
func NewAccountSupervisor(
	userID string,
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	gateway crypto.IdentityGateway,
	exporter *backup.Exporter,
	appCfg config.ClientApp,
	workersCfg config.ClientWorkers,
	label, model string,
	logger *logger.Logger,
) AccountSupervisor {
	return &accountSupervisor{
		userID:       userID,
		label:        label,
		model:        model,
		version:      appCfg.Version,
		localStore:   localStore,
		adapter:      serverAdapter,
		gateway:      gateway,
		exporter:     exporter,
		pollInterval: workersCfg.ActivationPollInterval,
		clientSet:    newSignal[[]models.Client](),
		invitations:  make(map[models.TeamInvitation]models.InvitationResult),
		logger:       logger,
	}
}

// CurrentState implements [AccountSupervisor]. The persisted slot is read
// once and mirrored in memory afterwards.
func (s *accountSupervisor) CurrentState(ctx context.Context) (models.RegistrationState, error) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()

	if s.stateLoaded {
		return s.state, nil
	}

	state, err := s.localStore.States.Get(ctx, s.userID)
	if err != nil {
		return models.RegistrationState{}, fmt.Errorf("read registration state: %w", err)
	}

	s.state = state
	s.stateLoaded = true
	return state, nil
}

// persistState writes state durably before updating the in-memory mirror,
// so the persisted copy stays the source of truth across a crash.
func (s *accountSupervisor) persistState(ctx context.Context, state models.RegistrationState) error {
	if err := s.localStore.States.Put(ctx, s.userID, state); err != nil {
		return fmt.Errorf("persist registration state: %w", err)
	}

	s.stateMu.Lock()
	s.state = state
	s.stateLoaded = true
	s.stateMu.Unlock()

	return nil
}

// GetOrRegisterClient implements [AccountSupervisor].
func (s *accountSupervisor) GetOrRegisterClient(ctx context.Context, password string) (models.RegistrationState, error) {
	v, err, _ := s.regFlight.Do(s.userID, func() (any, error) {
		state, err := s.CurrentState(ctx)
		if err != nil {
			return models.RegistrationState{}, err
		}
		if state.IsRegistered() {
			// idempotent fast path, no network
			return state, nil
		}

		if err = s.RefreshClientSet(ctx); err != nil {
			return models.RegistrationState{}, err
		}

		return s.registerNewClient(ctx, password)
	})
	if err != nil {
		return models.RegistrationState{}, err
	}

	return v.(models.RegistrationState), nil
}

// RefreshClientSet implements [AccountSupervisor]. The authoritative list
// replaces the local cache, never merges into it, and every successful
// refresh is published to client-set subscribers — this feed is what keeps
// the liveness monitor's view current after registration.
func (s *accountSupervisor) RefreshClientSet(ctx context.Context) error {
	clients, err := s.adapter.ListClients(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("list registered clients: %w", err)
	}
	if err = s.localStore.Clients.ReplaceAll(ctx, s.userID, clients); err != nil {
		return err
	}
	s.clientSet.publish(clients)

	return nil
}

// RegisterNewClient implements [AccountSupervisor].
func (s *accountSupervisor) RegisterNewClient(ctx context.Context, password string) (models.RegistrationState, error) {
	return s.registerNewClient(ctx, password)
}

func (s *accountSupervisor) registerNewClient(ctx context.Context, password string) (models.RegistrationState, error) {
	password = s.resolvePassword(ctx, password)

	material, err := s.gateway.CreateClientMaterial()
	if err != nil {
		return models.RegistrationState{}, fmt.Errorf("%w: create client material: %v", ErrInternal, err)
	}
	if material == nil {
		// lower-level corruption, unrecoverable locally; no network call
		return models.RegistrationState{}, fmt.Errorf("%w: no usable crypto context", ErrInternal)
	}

	req := models.RegisterClientRequest{
		UserID:        s.userID,
		Label:         s.label,
		Model:         s.model,
		LastResortKey: material.LastResortKey,
		PreKeys:       material.PreKeys,
		Password:      password,
	}

	client, err := s.adapter.RegisterClient(ctx, req)
	switch {
	case err == nil:
		// fallthrough below

	case errors.Is(err, adapter.ErrMissingAuth):
		state := models.PasswordMissing()
		if perr := s.persistState(ctx, state); perr != nil {
			return models.RegistrationState{}, perr
		}
		return state, nil

	case errors.Is(err, adapter.ErrTooManyClients):
		state := models.LimitReached()
		if perr := s.persistState(ctx, state); perr != nil {
			return models.RegistrationState{}, perr
		}
		return state, nil

	default:
		// any other rejection propagates with no state transition
		return models.RegistrationState{}, err
	}

	client.UserID = s.userID
	if client.Fingerprint == "" {
		client.Fingerprint = material.Client.Fingerprint
	}
	if err = s.localStore.Clients.Insert(ctx, client); err != nil {
		return models.RegistrationState{}, err
	}

	state := models.Registered(client.ID, s.version)
	if err = s.persistState(ctx, state); err != nil {
		return models.RegistrationState{}, err
	}

	s.logger.Info().
		Str("user_id", s.userID).
		Str("client_id", client.ID).
		Msg("client registered")

	return state, nil
}

// resolvePassword prefers the supplied password, falling back to the
// account's cached one. A missing account record resolves to empty.
func (s *accountSupervisor) resolvePassword(ctx context.Context, password string) string {
	if password != "" {
		return password
	}

	account, err := s.localStore.Accounts.Get(ctx, s.userID)
	if err != nil {
		return ""
	}
	return account.Password
}

// DeleteClient implements [AccountSupervisor].
func (s *accountSupervisor) DeleteClient(ctx context.Context, clientID, password string) error {
	clients, err := s.localStore.Clients.ListByUser(ctx, s.userID)
	if err != nil {
		return err
	}

	known := false
	for _, c := range clients {
		if c.ID == clientID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: client %s not found or already deleted", ErrInternal, clientID)
	}

	if err = s.adapter.DeleteClient(ctx, clientID, password); err != nil {
		// remote failure propagates verbatim, cache untouched
		return err
	}

	if err = s.localStore.Clients.Delete(ctx, s.userID, clientID); err != nil {
		return err
	}

	// subscribers must see the shrunk set, not wait for the next refresh
	remaining := make([]models.Client, 0, len(clients)-1)
	for _, c := range clients {
		if c.ID != clientID {
			remaining = append(remaining, c)
		}
	}
	s.clientSet.publish(remaining)

	return nil
}

// Logout implements [AccountSupervisor]. Runs as one atomicity unit under
// logoutMu: crypto material destroyed, then the persisted state reset.
func (s *accountSupervisor) Logout(ctx context.Context, reason string) error {
	s.logoutMu.Lock()
	defer s.logoutMu.Unlock()

	state, err := s.CurrentState(ctx)
	if err != nil {
		return err
	}
	if !state.IsRegistered() {
		return nil // already logged out
	}

	s.logger.Warn().
		Str("user_id", s.userID).
		Str("client_id", state.ClientID).
		Str("reason", reason).
		Msg("logging out, resetting cryptographic state")

	if err = s.gateway.DeleteLocalIdentity(); err != nil {
		return fmt.Errorf("reset local identity: %w", err)
	}

	return s.persistState(ctx, models.Unregistered())
}

// SubscribeClientSet implements [AccountSupervisor].
func (s *accountSupervisor) SubscribeClientSet() (<-chan []models.Client, func()) {
	return s.clientSet.subscribe()
}
