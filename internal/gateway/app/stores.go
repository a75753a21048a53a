package app

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"repolens/internal/artifactstore"
	"repolens/internal/gateway/config"
	"repolens/internal/gateway/ent"
	"repolens/internal/gateway/repository/commitstore"
	"repolens/internal/gateway/repository/projectstore"
	"repolens/internal/gateway/repository/requeststore"
)

type gatewayStores struct {
	requests  requeststore.Store
	projects  projectstore.Store
	commits   commitstore.Store
	artifacts artifactstore.Store
}

func initStores(cfg *config.Config) (*gatewayStores, error) {
	artifacts, err := chooseArtifactStore(cfg)
	if err != nil {
		return nil, err
	}

	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		return initEntStores(cfg, dialect.Postgres, "pgx", dsn, artifacts)
	}
	if path := strings.TrimSpace(cfg.SQLitePath); path != "" {
		dsn := fmt.Sprintf("file:%s?_fk=1", path)
		return initEntStores(cfg, dialect.SQLite, "sqlite3", dsn, artifacts)
	}

	log.Printf("stores: in-memory (no DATABASE_URL or SQLITE_PATH)")
	return &gatewayStores{
		requests:  requeststore.NewMemoryStore(),
		projects:  projectstore.NewMemoryStore(),
		commits:   commitstore.NewCachedStore(commitstore.NewMemoryStore(), cfg.CommitCache),
		artifacts: artifacts,
	}, nil
}

func initEntStores(cfg *config.Config, dia, driver, dsn string, artifacts artifactstore.Store) (*gatewayStores, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	drv := entsql.OpenDB(dia, db)
	client := ent.NewClient(ent.Driver(drv))

	return &gatewayStores{
		requests:  requeststore.NewEntStore(client),
		projects:  projectstore.NewEntStore(client),
		commits:   commitstore.NewCachedStore(commitstore.NewEntStore(client), cfg.CommitCache),
		artifacts: artifacts,
	}, nil
}

func chooseArtifactStore(cfg *config.Config) (artifactstore.Store, error) {
	if cfg.Artifact.CanUseS3() {
		s3Store, err := artifactstore.NewS3Store(artifactstore.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize artifact s3 store: %w", err)
		}
		log.Printf("artifact store: s3 bucket=%s endpoint=%s", cfg.Artifact.Bucket, cfg.Artifact.Endpoint)
		return s3Store, nil
	}
	if cfg.Artifact.Enabled {
		log.Printf("artifact store: using in-memory fallback (s3 config incomplete)")
	}
	return artifactstore.NewMemoryStore(), nil
}
