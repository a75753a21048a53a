// Package config loads gateway configuration from flags and the
// environment, with .env support for local development.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// DatabaseURL selects postgres persistence; SQLitePath is the local
	// fallback. With neither set, stores are in-memory.
	DatabaseURL string
	SQLitePath  string

	// GithubToken is the server-side credential used when a request
	// carries none. Private repositories need one or the other.
	GithubToken string

	CreditsPerFile int
	EmbedModel     string
	IndexWorkers   int
	CommitCache    int

	Artifact ArtifactConfig
}

type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func (a ArtifactConfig) CanUseS3() bool {
	return a.Endpoint != "" && a.AccessKey != "" && a.SecretKey != "" && a.Bucket != ""
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	cfg := &Config{
		Port:           *port,
		Env:            env,
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SQLitePath:     strings.TrimSpace(os.Getenv("SQLITE_PATH")),
		GithubToken:    strings.TrimSpace(os.Getenv("GITHUB_TOKEN")),
		CreditsPerFile: intFromEnv("CREDITS_PER_FILE", 1),
		EmbedModel:     strings.TrimSpace(os.Getenv("EMBED_MODEL")),
		IndexWorkers:   intFromEnv("INDEX_WORKERS", 4),
		CommitCache:    intFromEnv("COMMIT_CACHE_SIZE", 4096),
		Artifact:       loadArtifactConfig(env),
	}
	if strings.EqualFold(env, "local") && cfg.DatabaseURL == "" {
		local := localConfig()
		cfg.DatabaseURL = local.DatabaseURL
		cfg.Artifact = local.Artifact
	}
	return cfg, nil
}

func loadArtifactConfig(env string) ArtifactConfig {
	endpoint := resolveArtifactEndpoint(env)
	return ArtifactConfig{
		Enabled:   strings.EqualFold(strings.TrimSpace(env), "local") || endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_S3_BUCKET")), "repolens-artifacts"),
		UseSSL:    resolveArtifactUseSSL(env),
	}
}

func resolveArtifactEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return firstNonEmpty(strings.TrimSpace(os.Getenv("ARTIFACT_MINIO_ENDPOINT")), "minio:9000")
	}
	return strings.TrimSpace(os.Getenv("ARTIFACT_S3_ENDPOINT"))
}

func resolveArtifactUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("ARTIFACT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func intFromEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
