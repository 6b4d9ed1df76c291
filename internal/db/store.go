package db

import (
	"go.uber.org/zap"

	"vetclinic/internal/config"
	"vetclinic/internal/repository"
	"vetclinic/internal/repository/memory"
)

// OpenStore connects the configured backend, applies RESET_DB and migrations,
// and returns the store with a function releasing its connections.
func OpenStore(cfg *config.Config, log *zap.Logger) (repository.Store, func() error, error) {
	if cfg.DatabaseDriver == "memory" {
		log.Warn("using in-memory store, data is lost on exit")
		return memory.NewStore(), func() error { return nil }, nil
	}

	gormDB, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := Reset(gormDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
	}
	if err := Migrate(gormDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	log.Info("database ready", zap.String("driver", cfg.DatabaseDriver))

	return repository.NewStore(gormDB), sqlDB.Close, nil
}
