package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/obralink/docsearch-core/internal/core/domain"
	"github.com/obralink/docsearch-core/internal/core/ports/driven"
)

// Verify interface compliance
var (
	_ driven.HistoryStore     = (*HistoryStore)(nil)
	_ driven.SavedFilterStore = (*SavedFilterStore)(nil)
)

const (
	// Keys for Redis
	historyKey     = "search:history"
	filterHashKey  = "search:filters"
	filterOrderKey = "search:filters:order"

	historyLimit = 10
)

// HistoryStore implements driven.HistoryStore on a Redis list, so search
// history survives a process restart when Redis is configured.
type HistoryStore struct {
	client *redis.Client
}

// NewHistoryStore creates a Redis-backed HistoryStore.
func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

// Push records a query. An already-present query is ignored without
// re-ordering; a strictly-new query is prepended and the list trimmed to
// the bound.
func (s *HistoryStore) Push(ctx context.Context, query string) error {
	_, err := s.client.LPos(ctx, historyKey, query, redis.LPosArgs{}).Result()
	if err == nil {
		// Already present, do not re-order.
		return nil
	}
	if err != redis.Nil {
		return fmt.Errorf("failed to check history: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, historyKey, query)
	pipe.LTrim(ctx, historyKey, 0, historyLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push history: %w", err)
	}
	return nil
}

// List returns the history, most-recent-first.
func (s *HistoryStore) List(ctx context.Context) ([]string, error) {
	entries, err := s.client.LRange(ctx, historyKey, 0, historyLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// SavedFilterStore implements driven.SavedFilterStore on Redis. Filter
// options live in a hash; a companion list keeps the insertion order the
// hash itself cannot guarantee.
type SavedFilterStore struct {
	client *redis.Client
}

// NewSavedFilterStore creates a Redis-backed SavedFilterStore.
func NewSavedFilterStore(client *redis.Client) *SavedFilterStore {
	return &SavedFilterStore{client: client}
}

// Save stores a snapshot under the given name (last write wins). A new
// name is appended to the order list; an existing name keeps its position.
func (s *SavedFilterStore) Save(ctx context.Context, name string, opts domain.SearchOptions) error {
	data, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal filter: %w", err)
	}

	exists, err := s.client.HExists(ctx, filterHashKey, name).Result()
	if err != nil {
		return fmt.Errorf("failed to check filter: %w", err)
	}

	pipe := s.client.Pipeline()
	if !exists {
		pipe.RPush(ctx, filterOrderKey, name)
	}
	pipe.HSet(ctx, filterHashKey, name, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save filter: %w", err)
	}
	return nil
}

// List returns all saved filters in insertion order.
func (s *SavedFilterStore) List(ctx context.Context) ([]domain.SavedFilter, error) {
	names, err := s.client.LRange(ctx, filterOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list filters: %w", err)
	}

	filters := make([]domain.SavedFilter, 0, len(names))
	for _, name := range names {
		data, err := s.client.HGet(ctx, filterHashKey, name).Bytes()
		if err == redis.Nil {
			// Order entry without a hash entry; skip the stale name.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get filter %q: %w", name, err)
		}

		var opts domain.SearchOptions
		if err := json.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal filter %q: %w", name, err)
		}
		filters = append(filters, domain.SavedFilter{Name: name, Options: opts})
	}
	return filters, nil
}

// Delete removes a filter by exact name.
func (s *SavedFilterStore) Delete(ctx context.Context, name string) (bool, error) {
	removed, err := s.client.HDel(ctx, filterHashKey, name).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete filter: %w", err)
	}
	if removed == 0 {
		return false, nil
	}
	if err := s.client.LRem(ctx, filterOrderKey, 0, name).Err(); err != nil {
		return false, fmt.Errorf("failed to remove filter order entry: %w", err)
	}
	return true, nil
}
