package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/metrics"
)

// listCache cache public list của một bảng; cache nil thì mọi thao tác là no-op
type listCache struct {
	cache cache.Cache
	table string
	key   string
	ttl   time.Duration
}

func (l *listCache) get(ctx context.Context, dest any) bool {
	if l.cache == nil {
		return false
	}
	found, err := l.cache.Get(ctx, l.key, dest)
	if err != nil {
		log.Warn().Err(err).Str("key", l.key).Msg("[CACHE] Get failed")
		found = false
	}
	metrics.RecordCacheRequest(l.table, found)
	return found
}

func (l *listCache) set(ctx context.Context, value any) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Set(ctx, l.key, value, l.ttl); err != nil {
		log.Warn().Err(err).Str("key", l.key).Msg("[CACHE] Set failed")
	}
}

func (l *listCache) invalidate(ctx context.Context) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(context.WithoutCancel(ctx), l.key); err != nil {
		log.Warn().Err(err).Str("key", l.key).Msg("[CACHE] Invalidate failed")
	}
}
