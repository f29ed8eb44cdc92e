package cli

import (
	"os"
	"testing"

	"github.com/matzehuels/sugiyama/pkg/cache"
)

func TestNewCacheNoCacheReturnsNullCache(t *testing.T) {
	c, err := newCache(true)
	if err != nil {
		t.Fatalf("newCache(true) error: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", c)
	}
}

func TestNewCacheRedisURLReturnsRedisCache(t *testing.T) {
	oldURL := os.Getenv("REDIS_URL")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	defer func() {
		if oldURL != "" {
			os.Setenv("REDIS_URL", oldURL)
		} else {
			os.Unsetenv("REDIS_URL")
		}
	}()

	c, err := newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) with REDIS_URL error: %v", err)
	}
	if _, ok := c.(*cache.RedisCache); !ok {
		t.Errorf("newCache(false) with REDIS_URL = %T, want *cache.RedisCache", c)
	}
}

func TestNewCacheRedisURLRejectsMalformedURL(t *testing.T) {
	oldURL := os.Getenv("REDIS_URL")
	os.Setenv("REDIS_URL", "not-a-url")
	defer func() {
		if oldURL != "" {
			os.Setenv("REDIS_URL", oldURL)
		} else {
			os.Unsetenv("REDIS_URL")
		}
	}()

	if _, err := newCache(false); err == nil {
		t.Error("newCache(false) with malformed REDIS_URL: want error, got nil")
	}
}
