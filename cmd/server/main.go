package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/config"
	handlerhttp "github.com/MKhiriev/go-user-admin/internal/handler/http"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/server"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/session"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/internal/workers"
)

// sessionSweepInterval is how often expired in-memory sessions are reclaimed.
const sessionSweepInterval = time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-user-admin")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sessions, err := session.NewStore(ctx, cfg.Sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}

	// redis expires sessions natively; the in-memory store needs a sweeper
	if memoryStore, ok := sessions.(*session.MemoryStore); ok {
		workers.NewWorkers(workers.NewSessionSweeper(memoryStore, sessionSweepInterval, log)).Run()
	}

	services := service.NewServices(storages, log)

	handler := handlerhttp.NewHandler(services, sessions, cfg.Sessions, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
