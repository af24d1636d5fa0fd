package cachecatalogrepo

import (
	"context"
	cacherepo "pdfstore/internal/repositories/cache"
	"time"
)

type repository struct {
	cache      cacherepo.Cache
	catalogTTL time.Duration
}

func New(cache cacherepo.Cache, catalogTTL time.Duration) *repository {
	return &repository{
		cache:      cache,
		catalogTTL: catalogTTL,
	}
}

func (r *repository) Get(ctx context.Context, key string) (string, error) {
	pdfsJSON, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}

	return pdfsJSON, nil
}

func (r *repository) Set(ctx context.Context, key string, value interface{}) error {
	return r.cache.Set(ctx, key, value, r.catalogTTL).Err()
}

func (r *repository) Del(ctx context.Context, keys ...string) error {
	return r.cache.Del(ctx, keys...).Err()
}
