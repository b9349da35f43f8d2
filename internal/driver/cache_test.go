package driver

import (
	"crypto/sha256"
	"testing"
)

func openTestCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("conffmt-test")
	if err != nil {
		t.Fatalf("OpenDiskCache failed: %v", err)
	}
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := CacheKey(sha256.Sum256([]byte("content")), 4)

	if cache.IsCanonical(key) {
		t.Error("fresh cache reports a hit")
	}
	if err := cache.MarkCanonical(key, "a.conf"); err != nil {
		t.Fatalf("MarkCanonical failed: %v", err)
	}
	if !cache.IsCanonical(key) {
		t.Error("marked entry not found")
	}
}

func TestCacheKeyVariesWithIndent(t *testing.T) {
	hash := sha256.Sum256([]byte("content"))
	if CacheKey(hash, 4) == CacheKey(hash, 2) {
		t.Error("indent width should change the key")
	}
	if CacheKey(hash, 4) != CacheKey(hash, 4) {
		t.Error("key is not deterministic")
	}
}

func TestCachePurge(t *testing.T) {
	cache := openTestCache(t)
	key := CacheKey(sha256.Sum256([]byte("content")), 4)

	if err := cache.MarkCanonical(key, "a.conf"); err != nil {
		t.Fatal(err)
	}
	if err := cache.Purge(); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if cache.IsCanonical(key) {
		t.Error("entry survived Purge")
	}

	// Purging an already empty cache is fine.
	if err := cache.Purge(); err != nil {
		t.Errorf("second Purge failed: %v", err)
	}
}

func TestNilCacheIsTolerated(t *testing.T) {
	var cache *DiskCache
	key := CacheKey(sha256.Sum256([]byte("content")), 4)

	if cache.IsCanonical(key) {
		t.Error("nil cache reports a hit")
	}
	if err := cache.MarkCanonical(key, "a.conf"); err != nil {
		t.Errorf("nil MarkCanonical failed: %v", err)
	}
	if err := cache.Purge(); err != nil {
		t.Errorf("nil Purge failed: %v", err)
	}
}
