// Package config assembles and validates the runtime configuration of the
// identity supervisor agent. Values are read from environment variables via
// struct tags; see [GetClientConfig].
package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings.
type ClientApp struct {
	// Platform tags the producing platform in backup metadata and client
	// registration (e.g. "linux", "darwin").
	Platform string `env:"IDENT_PLATFORM" envDefault:"linux"`
	// Version is the local schema/registration version stamped on a
	// successful client registration and embedded in backup metadata.
	Version string `env:"IDENT_VERSION" envDefault:"1"`
	// BackupDir is the directory where exported archives are written.
	BackupDir string `env:"IDENT_BACKUP_DIR" envDefault:"."`
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the identity service endpoint address.
	HTTPAddress string `env:"IDENT_HTTP_ADDRESS"`
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration `env:"IDENT_REQUEST_TIMEOUT" envDefault:"30s"`
	// SessionToken is the bearer token of the signed-in account session the
	// agent is started with.
	SessionToken string `env:"IDENT_SESSION_TOKEN"`
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path of the local account database.
	DSN string `env:"IDENT_DB_DSN" envDefault:"ident-keeper.db"`
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// IdentityDir is the directory holding local cryptographic identity
	// material managed by the crypto gateway.
	IdentityDir string `env:"IDENT_IDENTITY_DIR" envDefault:".identity"`
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// ActivationPollInterval is the fixed delay between "who am I" queries
	// while waiting for an email address to become active.
	ActivationPollInterval time.Duration `env:"IDENT_ACTIVATION_POLL_INTERVAL" envDefault:"3s"`
	// ClientSetRefreshInterval is the fixed delay between authoritative
	// client-list refreshes feeding the liveness monitor.
	ClientSetRefreshInterval time.Duration `env:"IDENT_CLIENT_REFRESH_INTERVAL" envDefault:"30s"`
}

// ClientConfig is the top-level configuration of the supervisor agent.
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Adapter contains transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the agent configuration from the
// environment. Returns a wrapped validation error naming the first invalid
// configuration group.
func GetClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	if err := parseEnv(&cfg); err != nil {
		return ClientConfig{}, err
	}

	if err := cfg.validate(); err != nil {
		return ClientConfig{}, err
	}

	return cfg, nil
}

func (c ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" || c.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: http address %q, request timeout %s",
			ErrInvalidAdapterConfigs, c.Adapter.HTTPAddress, c.Adapter.RequestTimeout)
	}
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if c.App.Platform == "" || c.App.Version == "" {
		return fmt.Errorf("%w: platform %q, version %q",
			ErrInvalidAppConfigs, c.App.Platform, c.App.Version)
	}
	if c.Workers.ActivationPollInterval <= 0 {
		return fmt.Errorf("%w: activation poll interval %s",
			ErrInvalidWorkerConfigs, c.Workers.ActivationPollInterval)
	}
	if c.Workers.ClientSetRefreshInterval <= 0 {
		return fmt.Errorf("%w: client set refresh interval %s",
			ErrInvalidWorkerConfigs, c.Workers.ClientSetRefreshInterval)
	}

	return nil
}
