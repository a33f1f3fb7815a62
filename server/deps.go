package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"companion.GO/api"
	"companion.GO/config"
	"companion.GO/core/cache"
	"companion.GO/core/logger"
	catalogRepo "companion.GO/model/repository/catalog"
	"companion.GO/service/catalog"
	"companion.GO/service/customization"
	"companion.GO/service/session"
)

// SeedDefaults writes the built-in catalog and Color Bar options. Safe to rerun.
func SeedDefaults(db *gorm.DB) error {
	if err := catalog.Seed(db, catalog.DefaultGroups(), catalog.GroupOrder); err != nil {
		return err
	}
	return customization.Seed(db, customization.DefaultCustomizations())
}

func seedIfEmpty(db *gorm.DB) error {
	repo := catalogRepo.NewCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return err
	}
	n, err := repo.CountProducts()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	logger.L().Info("catalog database empty, seeding defaults")
	return SeedDefaults(db)
}

// BuildDeps wires the catalog source picked by cfg.CatalogSource, the redis cache
// in front of it and the session manager.
// The static source tolerates a missing database; only CSV import needs one.
func BuildDeps(ctx context.Context, cfg *config.Config) (*api.Deps, error) {
	deps := &api.Deps{Config: cfg}

	db, err := config.NewDB()
	switch {
	case err == nil:
		deps.DB = db
	case cfg.CatalogSource == config.CatalogSourceDB:
		return nil, fmt.Errorf("connect db: %w", err)
	default:
		logger.L().Warn("database unavailable, catalog import disabled", zap.Error(err))
	}

	var (
		provider catalog.Provider
		options  customization.Source
	)
	switch cfg.CatalogSource {
	case config.CatalogSourceDB:
		if err := seedIfEmpty(db); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		provider = catalog.NewRepositoryProvider(db)
		options = customization.NewRepositorySource(db)
	case config.CatalogSourceStatic:
		provider = catalog.NewStaticProvider()
		options = customization.NewStaticSource()
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	groups, err := provider.Groups(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Validate(groups); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	cached := catalog.NewCachedProvider(provider, config.RedisClient, cfg.CatalogCacheTTL)
	deps.Catalog = cached
	deps.Options = options
	deps.Sessions = session.NewManager(cache.GetInstance(), cached, options, session.Config{
		TTL:      cfg.SessionTTL,
		ThinkMin: cfg.ThinkMin,
		ThinkMax: cfg.ThinkMax,
	})
	logger.L().Info("dependencies ready",
		zap.String("catalog_source", cfg.CatalogSource),
		zap.Bool("redis", config.RedisClient != nil),
		zap.Bool("db", deps.DB != nil))
	return deps, nil
}
