package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	rankingengine "festival/contexts/festival-operations/ranking-engine"
	rankingpostgres "festival/contexts/festival-operations/ranking-engine/adapters/postgres"
	registryservice "festival/contexts/festival-operations/registry-service"
	registrypostgres "festival/contexts/festival-operations/registry-service/adapters/postgres"
	votingcontrol "festival/contexts/festival-operations/voting-control"
	votingpostgres "festival/contexts/festival-operations/voting-control/adapters/postgres"
	"festival/internal/platform/config"
	"festival/internal/platform/db"
	"festival/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	registryRepo := registrypostgres.NewRepository(pg.DB, logger)
	registryModule := registryservice.NewModule(registryservice.Dependencies{
		Repository:  registryRepo,
		IDGenerator: registrypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	votingRepo := votingpostgres.NewRepository(pg.DB, logger)
	votingModule := votingcontrol.NewModule(votingcontrol.Dependencies{
		Scores: votingRepo,
		Roster: votingRepo,
		Clock:  votingpostgres.SystemClock{},
		IDGen:  votingpostgres.UUIDGenerator{},
		Logger: logger,
	})

	rankingRepo := rankingpostgres.NewRepository(pg.DB, logger)
	rankingModule := rankingengine.NewModule(rankingengine.Dependencies{
		Scores:      rankingRepo,
		Specialists: rankingRepo,
		Teams:       rankingRepo,
		Rankings:    rankingRepo,
		Clock:       rankingpostgres.SystemClock{},
		IDGen:       rankingpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	tokens := httpserver.TokenIssuer{Secret: []byte(cfg.JWTSecret)}
	server := httpserver.New(
		registryModule,
		votingModule,
		rankingModule,
		tokens,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
