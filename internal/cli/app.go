package cli

import (
	"context"

	"github.com/swiftscout/swiftscout/internal/config"
	"github.com/swiftscout/swiftscout/pkg/cache"
	"github.com/swiftscout/swiftscout/pkg/integrations/github"
	"github.com/swiftscout/swiftscout/pkg/integrations/spi"
	"github.com/swiftscout/swiftscout/pkg/packages"
	"github.com/swiftscout/swiftscout/pkg/readme"
)

// newService assembles the aggregation service from environment
// configuration. Every command builds its own service; the cache lives for
// the duration of the process, which for one-shot commands means a single
// invocation and for serve means the server's lifetime.
func newService(ctx context.Context) (*packages.Service, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	logger := loggerFromContext(ctx)

	store, err := cache.New(cache.Config{
		MaxSizeBytes: cfg.MaxSizeBytes(),
		Logger:       logger,
	})
	if err != nil {
		return nil, config.Config{}, err
	}
	general := packages.GeneralPartition(store)

	extractor, err := readme.New(readme.DefaultConfig(), logger)
	if err != nil {
		return nil, config.Config{}, err
	}

	svc, err := packages.New(packages.Config{
		Store:       store,
		Index:       spi.NewClient(general),
		GitHub:      github.NewClient(cfg.GitHubToken, general),
		Extractor:   extractor,
		Logger:      logger,
		MetadataTTL: cfg.CacheTTL,
		ReadmeTTL:   cfg.CacheTTL,
		SearchTTL:   cfg.CacheTTL,
	})
	if err != nil {
		return nil, config.Config{}, err
	}
	return svc, cfg, nil
}
