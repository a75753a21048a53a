// Package indexer submits file content to the embedding collaborator
// and persists the resulting vector records. It is the "external
// indexing call" of both the full-index and reindex paths.
package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"repolens/internal/artifactstore"
	"repolens/internal/repohost"
)

// FileRecord is the persisted artifact for one indexed file.
type FileRecord struct {
	Path      string    `json:"path"`
	Ref       string    `json:"ref"`
	Model     string    `json:"model"`
	Dimension int       `json:"dimension"`
	Vector    []float32 `json:"vector"`
	IndexedAt time.Time `json:"indexed_at"`
}

// Service embeds and stores files with bounded concurrency.
type Service struct {
	embed     Embedder
	artifacts artifactstore.Store
	workers   int
}

func New(embed Embedder, artifacts artifactstore.Store, workers int) *Service {
	if workers <= 0 {
		workers = 4
	}
	return &Service{embed: embed, artifacts: artifacts, workers: workers}
}

// IndexFiles fetches, embeds and stores each path at ref. Individual
// file failures are counted, not fatal; an error is returned only when
// at least one file failed so callers can log it. Already-filtered paths
// are expected.
func (s *Service) IndexFiles(ctx context.Context, projectID, ref string, host repohost.Client, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	scope := indexScope(projectID, ref)
	sem := make(chan struct{}, s.workers)
	var failed int32

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		path := p
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			defer func() { <-sem }()

			if err := s.indexOne(gctx, scope, ref, host, path); err != nil {
				atomic.AddInt32(&failed, 1)
				log.Printf("index %s@%s: %v", path, ref, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := atomic.LoadInt32(&failed); n > 0 {
		return fmt.Errorf("indexer: %d of %d files failed", n, len(paths))
	}
	return nil
}

func (s *Service) indexOne(ctx context.Context, scope, ref string, host repohost.Client, path string) error {
	content, err := host.FileContent(ctx, ref, path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		// Nothing to embed; an empty file is indexed as absent.
		return nil
	}

	vec, err := s.embed.Embed(ctx, content)
	if err != nil {
		return err
	}

	rec := FileRecord{
		Path:      path,
		Ref:       ref,
		Model:     s.embed.Model(),
		Dimension: len(vec),
		Vector:    vec,
		IndexedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.artifacts.Put(ctx, scope, path+".embedding.json", data)
}

func indexScope(projectID, ref string) string {
	return projectID + "/" + strings.TrimSpace(ref)
}
