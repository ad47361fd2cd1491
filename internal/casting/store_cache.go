// Copyright (c) 2026 Starting Out OK. All rights reserved.

package casting

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mickey-farmer/startingOutOK/internal/platform/constants"
)

// # Cache Decorator

// CacheRepository decorates a [Repository] with a Redis read-through
// cache. The full listing and individual entries are cached with a short
// TTL; every write invalidates both, since any write can change which
// bucket an entry partitions into.
//
// Cache failures degrade to the inner repository: a dead Redis slows the
// site down, it never takes it down.
type CacheRepository struct {
	inner  Repository
	client *redis.Client
	logger *slog.Logger
}

// NewCacheRepository wraps inner with caching.
func NewCacheRepository(inner Repository, client *redis.Client, logger *slog.Logger) *CacheRepository {
	return &CacheRepository{inner: inner, client: client, logger: logger}
}

// List serves the snapshot from cache when possible.
func (repository *CacheRepository) List(ctx context.Context) ([]Entry, error) {
	if data, err := repository.client.Get(ctx, constants.RedisPrefixCastingList).Bytes(); err == nil {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
		// Undecodable payload: fall through and repopulate.
	} else if !errors.Is(err, redis.Nil) {
		repository.logger.Warn("listing cache read failed", slog.String("error", err.Error()))
	}

	entries, err := repository.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	repository.set(ctx, constants.RedisPrefixCastingList, entries)
	return entries, nil
}

// FindBySlug serves one entry from cache when possible.
func (repository *CacheRepository) FindBySlug(ctx context.Context, slug string) (*Entry, error) {
	key := constants.RedisPrefixCastingDetail + slug
	if data, err := repository.client.Get(ctx, key).Bytes(); err == nil {
		entry := &Entry{}
		if err := json.Unmarshal(data, entry); err == nil {
			return entry, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		repository.logger.Warn("detail cache read failed", slog.String("error", err.Error()))
	}

	entry, err := repository.inner.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	repository.set(ctx, key, entry)
	return entry, nil
}

// Upsert writes through and invalidates.
func (repository *CacheRepository) Upsert(ctx context.Context, entry *Entry) error {
	if err := repository.inner.Upsert(ctx, entry); err != nil {
		return err
	}
	repository.invalidate(ctx, entry.Slug)
	return nil
}

// SetArchived writes through and invalidates.
func (repository *CacheRepository) SetArchived(ctx context.Context, slug string, archived bool) error {
	if err := repository.inner.SetArchived(ctx, slug, archived); err != nil {
		return err
	}
	repository.invalidate(ctx, slug)
	return nil
}

// SoftDelete writes through and invalidates.
func (repository *CacheRepository) SoftDelete(ctx context.Context, slug string) error {
	if err := repository.inner.SoftDelete(ctx, slug); err != nil {
		return err
	}
	repository.invalidate(ctx, slug)
	return nil
}

// ArchivePastDeadline writes through and drops the listing cache when
// anything moved.
func (repository *CacheRepository) ArchivePastDeadline(ctx context.Context, now time.Time) (int, error) {
	count, err := repository.inner.ArchivePastDeadline(ctx, now)
	if count > 0 {
		// Individual detail keys expire on their own TTL; only the
		// listing partition changed shape.
		if delErr := repository.client.Del(ctx, constants.RedisPrefixCastingList).Err(); delErr != nil {
			repository.logger.Warn("listing cache invalidation failed", slog.String("error", delErr.Error()))
		}
	}
	return count, err
}

func (repository *CacheRepository) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := repository.client.Set(ctx, key, data, constants.ListingCacheTTL).Err(); err != nil {
		repository.logger.Warn("cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (repository *CacheRepository) invalidate(ctx context.Context, slug string) {
	keys := []string{
		constants.RedisPrefixCastingList,
		constants.RedisPrefixCastingDetail + slug,
	}
	if err := repository.client.Del(ctx, keys...).Err(); err != nil {
		repository.logger.Warn("cache invalidation failed",
			slog.String("slug", slug),
			slog.String("error", err.Error()),
		)
	}
}
