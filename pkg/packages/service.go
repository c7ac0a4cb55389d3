package packages

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/errors"
	"github.com/swiftscout/swiftscout/pkg/integrations"
	"github.com/swiftscout/swiftscout/pkg/integrations/github"
	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
	"github.com/swiftscout/swiftscout/pkg/readme"
)

// Config assembles a Service. Store, Index, GitHub, and Extractor are
// required; TTLs default to the per-partition cache defaults when zero.
type Config struct {
	Store     *cache.Store
	Index     *spi.Client
	GitHub    *github.Client
	Extractor *readme.Extractor
	Logger    *log.Logger

	MetadataTTL time.Duration
	ReadmeTTL   time.Duration
	SearchTTL   time.Duration
}

// Service answers the three package queries, caching every answer in a
// typed partition over the shared store.
type Service struct {
	index     *spi.Client
	github    *github.Client
	extractor *readme.Extractor
	logger    *log.Logger

	store    *cache.Store
	metadata *cache.Partition[*Info]
	readmes  *cache.Partition[*Readme]
	searches *cache.Partition[*SearchResults]
}

// New creates a Service over the given collaborators.
func New(cfg Config) (*Service, error) {
	if cfg.Store == nil || cfg.Index == nil || cfg.GitHub == nil || cfg.Extractor == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "packages: store, index, github, and extractor are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.MetadataTTL <= 0 {
		cfg.MetadataTTL = cache.DefaultMetadataTTL
	}
	if cfg.ReadmeTTL <= 0 {
		cfg.ReadmeTTL = cache.DefaultReadmeTTL
	}
	if cfg.SearchTTL <= 0 {
		cfg.SearchTTL = cache.DefaultSearchTTL
	}

	return &Service{
		index:     cfg.Index,
		github:    cfg.GitHub,
		extractor: cfg.Extractor,
		logger:    cfg.Logger,
		store:     cfg.Store,
		metadata:  cache.NewPartition[*Info](cfg.Store, "metadata", cfg.MetadataTTL),
		readmes:   cache.NewPartition[*Readme](cfg.Store, "readme", cfg.ReadmeTTL),
		searches:  cache.NewPartition[*SearchResults](cfg.Store, "search", cfg.SearchTTL),
	}, nil
}

// GetReadme fetches the README for owner/repo and derives usage examples,
// installation snippets, and keywords from it. Extraction never fails: a
// README without recognizable structure yields empty collections.
func (s *Service) GetReadme(ctx context.Context, owner, repo string, refresh bool) (*Readme, error) {
	if err := errors.ValidateOwnerRepo(owner, repo); err != nil {
		return nil, err
	}

	key := owner + "/" + repo
	if !refresh {
		if cached, ok := s.readmes.Get(ctx, key); ok {
			return cached, nil
		}
	}

	markdown, err := s.github.FetchReadme(ctx, owner, repo)
	if err != nil {
		return nil, mapUpstreamErr(err, "fetch readme for %s/%s", owner, repo)
	}

	result := &Readme{
		Owner:        owner,
		Repository:   repo,
		Markdown:     markdown,
		Examples:     s.extractor.Examples(markdown),
		Installation: s.extractor.Installation(markdown),
		Keywords:     s.extractor.Keywords(markdown),
		FetchedAt:    time.Now().UTC(),
	}
	s.readmes.Set(ctx, key, result)
	return result, nil
}

// GetInfo fetches package metadata from the index and repository metrics
// from GitHub, concurrently. A metrics failure degrades to metadata-only;
// a metadata failure fails the query.
func (s *Service) GetInfo(ctx context.Context, owner, repo string, refresh bool) (*Info, error) {
	if err := errors.ValidateOwnerRepo(owner, repo); err != nil {
		return nil, err
	}

	key := owner + "/" + repo
	if !refresh {
		if cached, ok := s.metadata.Get(ctx, key); ok {
			return cached, nil
		}
	}

	var (
		meta    *spi.PackageMetadata
		metrics *integrations.RepoMetrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.index.Metadata(gctx, owner, repo, refresh)
		if err != nil {
			return mapUpstreamErr(err, "fetch metadata for %s", key)
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		m, err := s.github.FetchMetrics(gctx, owner, repo, refresh)
		if err != nil {
			// Metrics are enrichment; log and continue without them.
			s.logger.Warn("packages: repo metrics unavailable", "package", key, "error", err)
			return nil
		}
		metrics = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	info := &Info{
		Metadata:  *meta,
		Metrics:   metrics,
		FetchedAt: time.Now().UTC(),
	}
	s.metadata.Set(ctx, key, info)
	return info, nil
}

// Search queries the package index. Results for identical (query, filters)
// pairs are served from cache under a deterministic hashed key.
func (s *Service) Search(ctx context.Context, query string, filters spi.SearchFilters, refresh bool) (*SearchResults, error) {
	if err := errors.ValidateSearchQuery(query); err != nil {
		return nil, err
	}

	key := cache.HashKey("q", query, filters)
	if !refresh {
		if cached, ok := s.searches.Get(ctx, key); ok {
			return cached, nil
		}
	}

	results, err := s.index.Search(ctx, query, filters, refresh)
	if err != nil {
		return nil, mapUpstreamErr(err, "search %q", query)
	}

	page := &SearchResults{
		Query:     query,
		Filters:   filters,
		Results:   results,
		FetchedAt: time.Now().UTC(),
	}
	s.searches.Set(ctx, key, page)
	return page, nil
}

// Stats reports per-partition cache statistics keyed by partition name,
// plus the whole-store view under "total".
func (s *Service) Stats() map[string]cache.Stats {
	return map[string]cache.Stats{
		"metadata": s.metadata.Stats(),
		"readme":   s.readmes.Stats(),
		"search":   s.searches.Stats(),
		"total":    s.store.Stats(),
	}
}

// ClearCache drops every cached entry, including the general-purpose
// partition the upstream clients share.
func (s *Service) ClearCache() {
	s.store.Clear()
}

// mapUpstreamErr converts integration sentinel errors into coded errors so
// the CLI and HTTP surfaces can map them uniformly.
func mapUpstreamErr(err error, format string, args ...any) error {
	switch {
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.Wrap(errors.ErrCodePackageNotFound, err, format, args...)
	case stderrors.Is(err, integrations.ErrRateLimited):
		return errors.Wrap(errors.ErrCodeRateLimited, err, format, args...)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, format, args...)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, format, args...)
	}
}

// GeneralPartition creates the general-purpose partition the upstream
// clients use for read-through caching. It shares the same store and
// budget as the query partitions.
func GeneralPartition(store *cache.Store) *cache.Partition[json.RawMessage] {
	return cache.NewPartition[json.RawMessage](store, "general", cache.DefaultGeneralTTL)
}
