// Package bootstrap builds stores and collaborators from configuration for the
// finsight binaries.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/finsight/internal/config"
	"github.com/kailas-cloud/finsight/internal/db/redis"
	"github.com/kailas-cloud/finsight/internal/db/sqldb"
	documentrepo "github.com/kailas-cloud/finsight/internal/repository/document"
	openaicls "github.com/kailas-cloud/finsight/internal/transport/openai"
	analysisuc "github.com/kailas-cloud/finsight/internal/usecase/analysis"
)

// DocumentStore is the union of document operations both binaries need.
type DocumentStore interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, data []byte) error
	List(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

var (
	_ DocumentStore = (*documentrepo.FileRepo)(nil)
	_ DocumentStore = (*documentrepo.RedisRepo)(nil)
)

// OpenDatabase opens the relational store, waits for it and applies
// migrations when migrate is set.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig, migrate bool, logger *zap.Logger) (*sqldb.Store, error) {
	dialect, err := sqldb.ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	store, err := sqldb.Open(sqldb.Config{
		Dialect:      dialect,
		DSN:          cfg.DSN,
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database", zap.String("driver", cfg.Driver))

	if migrate {
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		version, err := store.MigrationVersion(ctx)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		logger.Info("Database schema up to date", zap.Int64("version", version))
	}

	return store, nil
}

// OpenDocuments opens the configured document store. The returned close
// function is never nil.
func OpenDocuments(
	ctx context.Context, cfg config.DocumentsConfig, readiness time.Duration, logger *zap.Logger,
) (DocumentStore, func(), error) {
	switch cfg.Driver {
	case "fs":
		logger.Info("Using filesystem documents", zap.String("dir", cfg.Dir))
		return documentrepo.NewFileRepo(cfg.Dir), func() {}, nil
	case "redis", "valkey":
		store, err := redis.NewStore(redis.Config{
			Addrs:    cfg.Addrs,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
		}
		if err := store.WaitForReady(ctx, readiness); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("%s not ready: %w", cfg.Driver, err)
		}
		logger.Info("Connected to document store",
			zap.String("driver", cfg.Driver),
			zap.Strings("addrs", cfg.Addrs),
		)
		return documentrepo.NewRedisRepo(store, cfg.KeyPrefix), store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown documents driver %q", cfg.Driver)
	}
}

// NewClassifier returns the configured strength classifier.
func NewClassifier(cfg config.AnalysisConfig, logger *zap.Logger) (analysisuc.Classifier, error) {
	switch cfg.Classifier {
	case "", "rules":
		return analysisuc.RulesClassifier{}, nil
	case "openai":
		return openaicls.NewClassifier(&openaicls.Config{
			APIKey:   cfg.Provider.APIKey,
			BaseURL:  cfg.Provider.BaseURL,
			Model:    cfg.Provider.Model,
			Provider: cfg.Provider.Name,
			Logger:   logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown classifier %q", cfg.Classifier)
	}
}
