package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/models"
)

// livenessMonitor watches the account's cached client set and fires a
// logout when the registered client disappears from it. The rule is
// edge-triggered: only a present-to-absent transition is actionable, so one
// bit of "was previously present" state is kept across observations. The
// absent-to-present direction is the normal startup case and does nothing.
type livenessMonitor struct {
	userID     string
	supervisor AccountSupervisor
	tracker    Tracker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	wasPresent bool

	logger *logger.Logger
}

// NewLivenessMonitor creates a monitor for supervisor's account. The monitor
// is idle until Start is called.
func NewLivenessMonitor(userID string, supervisor AccountSupervisor, tracker Tracker, logger *logger.Logger) LivenessMonitor {
	return &livenessMonitor{userID: userID, supervisor: supervisor, tracker: tracker, logger: logger}
}

// Start implements [LivenessMonitor]. It stops any previously running
// monitor, subscribes to the supervisor's client-set feed, and processes
// observations until ctx is cancelled or Stop is called.
func (m *livenessMonitor) Start(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	monitorCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	observations, unsubscribe := m.supervisor.SubscribeClientSet()

	go func() {
		defer m.wg.Done()
		defer unsubscribe()

		for {
			select {
			case <-monitorCtx.Done():
				return
			case clients := <-observations:
				m.observe(monitorCtx, clients)
			}
		}
	}()
}

// Stop implements [LivenessMonitor].
func (m *livenessMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// observe applies the edge-triggered revocation rule to one client-set
// observation.
func (m *livenessMonitor) observe(ctx context.Context, clients []models.Client) {
	state, err := m.supervisor.CurrentState(ctx)
	if err != nil {
		m.logger.Err(err).Msg("liveness: read registration state")
		return
	}
	if !state.IsRegistered() {
		m.wasPresent = false
		return
	}

	present := false
	for _, c := range clients {
		if c.ID == state.ClientID {
			present = true
			break
		}
	}

	if m.wasPresent && !present {
		// server-side revocation: track, log out, reset crypto state
		m.tracker.ClientRevoked(m.userID, state.ClientID)
		if err := m.supervisor.Logout(ctx, "client revoked server-side"); err != nil {
			m.logger.Err(err).Msg("liveness: logout after revocation")
		}
	}

	m.wasPresent = present
}
