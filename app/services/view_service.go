package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/utils/cache"
)

// Cache key TTLs. Counters are ephemeral popularity signals only; losing
// them degrades the featured ranking, never inventory or pricing.
const (
	searchTTL = 3 * time.Hour
	viewTTL   = 7 * 24 * time.Hour
	otpTTL    = 5 * time.Minute
)

const (
	ViewEntityProduct = "product"
	ViewEntityService = "service"
)

type FeaturedEntry struct {
	ID    string `json:"id"`
	Views int64  `json:"views"`
}

type ViewService struct {
	cache *cache.Cache
}

func NewViewService(c *cache.Cache) *ViewService {
	return &ViewService{cache: c}
}

func viewKey(entityType, id string) string {
	return entityType + ":" + id + ":views"
}

// CountView atomically increments the counter (created at 1 when absent)
// and pushes the expiry out another week.
func (s *ViewService) CountView(ctx context.Context, entityType, id string) (int64, error) {
	key := viewKey(entityType, id)

	count, err := s.cache.IncrBy(ctx, key, 1)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	if err := s.cache.Expire(ctx, key, viewTTL); err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return count, nil
}

// GetViews returns the counter value, or 0 for an absent or expired key.
func (s *ViewService) GetViews(ctx context.Context, entityType, id string) (int64, error) {
	raw, ok, err := s.cache.Get(ctx, viewKey(entityType, id))
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	if !ok {
		return 0, nil
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return count, nil
}

// GetFeatured scans all view counters for the entity type, fetches their
// values in one batched read and returns the top entries by view count.
// Cost is proportional to the number of viewed entities, which is bounded
// by catalog size.
func (s *ViewService) GetFeatured(ctx context.Context, entityType string, limit int) ([]FeaturedEntry, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}

	prefix := entityType + ":"
	var keys []string
	it := s.cache.Keys(prefix + "*:views")
	for it.Next(ctx) {
		keys = append(keys, it.Key())
	}
	if err := it.Err(); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	if len(keys) == 0 {
		return []FeaturedEntry{}, nil
	}

	vals, err := s.cache.MGet(ctx, keys...)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	entries := make([]FeaturedEntry, 0, len(keys))
	for i, key := range keys {
		id := strings.TrimSuffix(strings.TrimPrefix(key, prefix), ":views")
		views, parseErr := strconv.ParseInt(vals[i], 10, 64)
		if parseErr != nil {
			continue
		}
		entries = append(entries, FeaturedEntry{ID: id, Views: views})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Views > entries[j].Views
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
