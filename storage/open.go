package storage

import (
	"context"

	"github.com/Aram-az/ESSDev-Lifeyears/config"

	"github.com/pkg/errors"
)

// Open builds the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendSQLite, config.BackendPostgres:
		db, err := config.OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		return NewGorm(db), nil
	case config.BackendRedis:
		r := NewRedis(cfg.RedisAddr)
		if err := r.client.Ping(ctx).Err(); err != nil {
			_ = r.Close()
			return nil, errors.Wrapf(err, "redis ping %s", cfg.RedisAddr)
		}
		return r, nil
	case config.BackendS3:
		return NewS3(ctx, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region)
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
