package service

import (
	"github.com/MKhiriev/go-ident-keeper/internal/adapter"
	"github.com/MKhiriev/go-ident-keeper/internal/backup"
	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/crypto"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/internal/store"
)

// ClientServices bundles the per-account service layer.
type ClientServices struct {
	Supervisor AccountSupervisor
	Liveness   LivenessMonitor
	Tracker    Tracker
}

// NewClientServices wires the supervisor, backup exporter, tracker, and
// liveness monitor for one signed-in account identified by userID. label and
// model describe this device on the identity service.
func NewClientServices(
	userID string,
	localStore *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	gateway crypto.IdentityGateway,
	cfg config.ClientConfig,
	label, model string,
	log *logger.Logger,
) *ClientServices {
	exporter := backup.NewExporter(localStore.DB, cfg.App, log)
	tracker := NewLogTracker(log)

	supervisor := NewAccountSupervisor(
		userID, localStore, serverAdapter, gateway, exporter,
		cfg.App, cfg.Workers, label, model, log,
	)

	return &ClientServices{
		Supervisor: supervisor,
		Liveness:   NewLivenessMonitor(userID, supervisor, tracker, log),
		Tracker:    tracker,
	}
}
