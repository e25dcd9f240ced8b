package cache

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(rdb), mr
}

func TestGetMissingKey(t *testing.T) {
	c, _ := newCache(t)

	val, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || val != "" {
		t.Errorf("Get(absent) = (%q, %v), want (\"\", false)", val, ok)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || val != "v" {
		t.Errorf("Get(k) = (%q, %v), want (\"v\", true)", val, ok)
	}
	if ttl := mr.TTL("k"); ttl != time.Minute {
		t.Errorf("TTL = %v, want %v", ttl, time.Minute)
	}
}

func TestGetJSONMiss(t *testing.T) {
	c, _ := newCache(t)

	var dest []string
	hit, err := c.GetJSON(context.Background(), "absent", &dest)
	if err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if hit {
		t.Error("GetJSON reported a hit for an absent key")
	}
}

func TestMGetMissingKeysComeBackEmpty(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "a", "1", 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Set(ctx, "c", "3", 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	vals, err := c.MGet(ctx, "a", "b", "c")
	if err != nil {
		t.Fatalf("MGet failed: %v", err)
	}
	want := []string{"1", "", "3"}
	for i, v := range vals {
		if v != want[i] {
			t.Errorf("MGet[%d] = %q, want %q", i, v, want[i])
		}
	}
}

func TestKeyIteratorWalksAllPages(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	// More keys than one SCAN page.
	want := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		key := fmt.Sprintf("product:%03d:views", i)
		if err := c.Set(ctx, key, "1", 0); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		want = append(want, key)
	}
	if err := c.Set(ctx, "service:1:views", "1", 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got []string
	it := c.Keys("product:*:views")
	for it.Next(ctx) {
		got = append(got, it.Key())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("iterator failed: %v", err)
	}

	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("iterator yielded %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("key[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeyIteratorNoMatches(t *testing.T) {
	c, _ := newCache(t)

	it := c.Keys("nothing:*")
	if it.Next(context.Background()) {
		t.Error("iterator yielded a key for an empty pattern")
	}
	if err := it.Err(); err != nil {
		t.Errorf("iterator error: %v", err)
	}
}
