package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/hextile/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", home)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	ctx := context.Background()
	dir := isolateCache(t)
	c := New(&bytes.Buffer{}, LogInfo)

	cc, err := c.newCache(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("--no-cache should select NullCache, got %T", cc)
	}

	cc, err = c.newCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	fc, ok := cc.(*cache.FileCache)
	if !ok {
		t.Fatalf("default cache = %T, want *cache.FileCache", cc)
	}
	if fc.Dir() != dir {
		t.Errorf("file cache dir = %q, want %q", fc.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestNewCacheRedisFallback(t *testing.T) {
	dir := isolateCache(t)
	t.Setenv(envRedisAddr, "127.0.0.1:1")

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	cc, err := c.newCache(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer cc.Close()

	fc, ok := cc.(*cache.FileCache)
	if !ok {
		t.Fatalf("unreachable redis should fall back to *cache.FileCache, got %T", cc)
	}
	if fc.Dir() != dir {
		t.Errorf("fallback dir = %q, want %q", fc.Dir(), dir)
	}
	if !strings.Contains(logs.String(), "redis unavailable") {
		t.Errorf("fallback should be logged as a warning:\n%s", logs.String())
	}
}
