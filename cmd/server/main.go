package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/apptime/portal-server/internal/api"
	"github.com/apptime/portal-server/internal/config"
	"github.com/apptime/portal-server/internal/secret"
	"github.com/apptime/portal-server/internal/session"
	"github.com/apptime/portal-server/internal/storage"
	storagecache "github.com/apptime/portal-server/internal/storage/cache"
	"github.com/apptime/portal-server/internal/storage/inmem"
	"github.com/apptime/portal-server/internal/storage/postgres"
	"github.com/apptime/portal-server/internal/token"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Decode the session signing secret and create the session authority
	signingSecret, err := secret.DecodeSigningSecret(cfg.SessionSigningSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("could not decode the session signing secret")
	}
	authority := session.NewAuthority(token.NewVerifier(signingSecret))

	// Initialize the configured storage driver and wrap it with the caching one
	log.Info().Str("driver", cfg.StorageDriver).Msg("initializing the storage driver...")
	var underlying storage.Driver
	switch strings.ToLower(cfg.StorageDriver) {
	case "postgres":
		underlying = postgres.New(cfg.PostgresDSN)
	case "inmem":
		underlying = inmem.New()
	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}
	if err := underlying.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the storage driver")
	}
	driver := storagecache.New(underlying)
	if err := driver.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("could not initialize the caching storage driver")
	}
	defer func() {
		driver.Close()
		underlying.Close()
	}()

	// Start up the portal API
	log.Info().Str("portal_api", cfg.PortalAPIListenAddress).Msg("starting up the portal API...")
	apis := &api.Service{
		Config:    cfg,
		Storage:   driver,
		Authority: authority,
	}
	apiErrs := make(chan error, 1)
	apis.Startup(apiErrs)
	go func() {
		err := <-apiErrs
		log.Fatal().Err(err).Msg("the portal API raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the portal API...")
		apis.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
