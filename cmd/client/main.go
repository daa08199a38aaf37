package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ident-keeper/internal/adapter"
	"github.com/MKhiriev/go-ident-keeper/internal/config"
	"github.com/MKhiriev/go-ident-keeper/internal/crypto"
	"github.com/MKhiriev/go-ident-keeper/internal/logger"
	"github.com/MKhiriev/go-ident-keeper/internal/service"
	"github.com/MKhiriev/go-ident-keeper/internal/store"
	"github.com/MKhiriev/go-ident-keeper/internal/workers"
	"github.com/MKhiriev/go-ident-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ident-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	serverAdapter.SetToken(cfg.Adapter.SessionToken)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	gateway := crypto.NewIdentityGateway(cfg.Storage.IdentityDir)

	account, err := bootstrapAccount(ctx, serverAdapter, localStorage)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve signed-in account")
	}

	label, err := os.Hostname()
	if err != nil {
		label = "unknown-host"
	}

	services := service.NewClientServices(
		account.UserID, localStorage, serverAdapter, gateway,
		cfg, label, cfg.App.Platform, log,
	)

	state, err := services.Supervisor.GetOrRegisterClient(ctx, "")
	if err != nil {
		log.Fatal().Err(err).Msg("resolve client registration")
	}
	log.Info().
		Str("user_id", account.UserID).
		Str("state", string(state.Kind)).
		Str("client_id", state.ClientID).
		Msg("registration state resolved")

	services.Liveness.Start(ctx)
	defer services.Liveness.Stop()

	// standing refresh of the server's client list feeds the liveness monitor
	workers.New(workers.Periodic(ctx, cfg.Workers.ClientSetRefreshInterval, func(ctx context.Context) {
		if err := services.Supervisor.RefreshClientSet(ctx); err != nil {
			log.Err(err).Msg("refresh client set")
		}
	})).Run()

	log.Info().Msg("shutting down")
}

// bootstrapAccount resolves the signed-in account from the server and caches
// the record locally so the supervisor can fall back to it while offline.
func bootstrapAccount(ctx context.Context, serverAdapter adapter.ServerAdapter, localStorage *store.ClientStorages) (models.User, error) {
	account, err := serverAdapter.GetSelf(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch own profile: %w", err)
	}

	if cached, cerr := localStorage.Accounts.Get(ctx, account.UserID); cerr == nil {
		// сохраняем локально закэшированный пароль, сервер его не отдаёт
		account.Password = cached.Password
	}
	if err = localStorage.Accounts.Save(ctx, account); err != nil {
		return models.User{}, fmt.Errorf("cache account record: %w", err)
	}

	return account, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
