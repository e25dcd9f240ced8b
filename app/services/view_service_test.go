package services

import (
	"context"
	"testing"
)

func TestCountViewIncrements(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewViewService(c)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.CountView(ctx, ViewEntityProduct, "p1")
		if err != nil {
			t.Fatalf("CountView failed: %v", err)
		}
		if got != want {
			t.Errorf("CountView returned %d, want %d", got, want)
		}
	}

	views, err := s.GetViews(ctx, ViewEntityProduct, "p1")
	if err != nil {
		t.Fatalf("GetViews failed: %v", err)
	}
	if views != 3 {
		t.Errorf("GetViews returned %d, want 3", views)
	}
}

func TestCountViewSetsExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	s := NewViewService(c)
	ctx := context.Background()

	if _, err := s.CountView(ctx, ViewEntityService, "s1"); err != nil {
		t.Fatalf("CountView failed: %v", err)
	}
	if ttl := mr.TTL("service:s1:views"); ttl != viewTTL {
		t.Errorf("counter TTL = %v, want %v", ttl, viewTTL)
	}
}

func TestGetViewsAbsentKeyReturnsZero(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewViewService(c)

	views, err := s.GetViews(context.Background(), ViewEntityProduct, "never-viewed")
	if err != nil {
		t.Fatalf("GetViews failed: %v", err)
	}
	if views != 0 {
		t.Errorf("GetViews returned %d, want 0", views)
	}
}

func TestGetFeaturedRanksByViews(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewViewService(c)
	ctx := context.Background()

	counts := map[string]int{"A": 3, "B": 10, "C": 1}
	for id, n := range counts {
		for i := 0; i < n; i++ {
			if _, err := s.CountView(ctx, ViewEntityProduct, id); err != nil {
				t.Fatalf("CountView failed: %v", err)
			}
		}
	}
	// A counter of another entity type must not leak into the ranking.
	if _, err := s.CountView(ctx, ViewEntityService, "X"); err != nil {
		t.Fatalf("CountView failed: %v", err)
	}

	entries, err := s.GetFeatured(ctx, ViewEntityProduct, 2)
	if err != nil {
		t.Fatalf("GetFeatured failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("GetFeatured returned %d entries, want 2", len(entries))
	}
	if entries[0].ID != "B" || entries[0].Views != 10 {
		t.Errorf("top entry = %+v, want B with 10 views", entries[0])
	}
	if entries[1].ID != "A" || entries[1].Views != 3 {
		t.Errorf("second entry = %+v, want A with 3 views", entries[1])
	}
}

func TestGetFeaturedEmpty(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewViewService(c)

	entries, err := s.GetFeatured(context.Background(), ViewEntityProduct, 5)
	if err != nil {
		t.Fatalf("GetFeatured failed: %v", err)
	}
	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("GetFeatured returned %d entries, want 0", len(entries))
	}
}
