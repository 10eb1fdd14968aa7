package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pickup-config/internal/adapter"
	"github.com/MKhiriev/go-pickup-config/internal/assets"
	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/handler"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/internal/readiness"
	"github.com/MKhiriev/go-pickup-config/internal/server"
	"github.com/MKhiriev/go-pickup-config/internal/service"
	"github.com/MKhiriev/go-pickup-config/internal/store"
	"github.com/MKhiriev/go-pickup-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("pickupd")
	cfg, err := config.GetAppConfig()
	if err != nil {
		if missing := config.MissingFields(err); len(missing) > 0 {
			log.Fatal().Err(err).Strs("missing", missing).Msg("required configuration is missing")
		}
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}
	log.Debug().Object("config", cfg).Msg("received configs")

	manifest, err := assets.Load(cfg.Assets.ManifestPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading asset manifest")
	}

	deps, closeDeps, err := newDependencies(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}
	defer closeDeps()

	gate := readiness.NewGate(service.ReadinessChecks(deps, manifest, log), cfg.Readiness, log)
	log.Info().Strs("checks", gate.Names()).Msg("checking dependencies")

	report, err := gate.Run(context.Background())
	if err != nil {
		// deferred calls do not run after Fatal
		closeDeps()
		log.Fatal().Err(err).Strs("failed", readiness.FailedChecks(err)).Msg("dependencies are not ready")
	}
	log.Info().Msg("all dependencies are ready")

	monitor := readiness.NewMonitor(gate, log)
	monitor.Record(report)
	monitor.Start(context.Background(), cfg.Readiness.RefreshInterval)
	defer monitor.Stop()

	services, err := service.NewServices(cfg, build, manifest, monitor, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newDependencies builds the probed collaborators. The returned func closes
// the database pool, if one was opened.
func newDependencies(cfg config.AppConfig, log *logger.Logger) (service.Dependencies, func(), error) {
	timeout := cfg.Readiness.Timeout

	backend, err := adapter.NewBackendAdapter(cfg.Backend, timeout, log)
	if err != nil {
		return service.Dependencies{}, nil, fmt.Errorf("error creating backend adapter: %w", err)
	}

	sms, err := adapter.NewSMSAdapter(cfg.SMS, timeout, log)
	if err != nil {
		return service.Dependencies{}, nil, fmt.Errorf("error creating sms adapter: %w", err)
	}

	deps := service.Dependencies{
		Backend: backend,
		SMS:     sms,
		Assets:  adapter.NewAssetFetcher(timeout, log),
	}

	closeFn := func() {}
	if cfg.Backend.DatabaseDSN != "" {
		db, err := store.NewConnectPostgres(cfg.Backend.DatabaseDSN, log)
		if err != nil {
			return service.Dependencies{}, nil, fmt.Errorf("error creating database pool: %w", err)
		}
		deps.Database = db
		closeFn = func() { db.Close() }
	}

	return deps, closeFn, nil
}
