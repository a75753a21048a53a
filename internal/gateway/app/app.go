// Package app wires configuration, stores, workflow services and the
// HTTP server into one runnable gateway.
package app

import (
	"context"
	"fmt"

	"repolens/internal/credit"
	"repolens/internal/gateway/config"
	"repolens/internal/gateway/handler"
	"repolens/internal/gateway/server"
	"repolens/internal/indexer"
	"repolens/internal/provision"
	"repolens/internal/reindex"
	"repolens/internal/repohost"
)

type App struct {
	server *server.Server
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	stores, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	embedder, err := indexer.NewGeminiEmbedder(ctx, cfg.EmbedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	indexSvc := indexer.New(embedder, stores.artifacts, cfg.IndexWorkers)
	pricing := credit.Pricing{CreditsPerFile: cfg.CreditsPerFile}
	hostFactory := repohost.Factory(repohost.NewGitHub)

	provisionSvc := provision.NewService(
		stores.requests,
		stores.projects,
		hostFactory,
		indexSvc,
		pricing,
		cfg.GithubToken,
	)
	reindexSvc := reindex.NewService(
		stores.projects,
		stores.commits,
		hostFactory,
		indexSvc,
		cfg.GithubToken,
	)

	svc := handler.NewService(provisionSvc, reindexSvc, stores.requests)
	mux := server.NewMux(svc)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
