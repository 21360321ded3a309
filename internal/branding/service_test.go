package branding

import (
	"context"
	"errors"
	"image/color"
	"reflect"
	"sync"
	"testing"
)

// memStore records every save for inspection.
type memStore struct {
	mu    sync.Mutex
	saves map[string][]ExtractionResult
	err   error
}

func newMemStore() *memStore {
	return &memStore{saves: make(map[string][]ExtractionResult)}
}

func (m *memStore) Save(tenantID string, result ExtractionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves[tenantID] = append(m.saves[tenantID], result)
	return nil
}

// memCache counts hits and writes.
type memCache struct {
	mu      sync.Mutex
	entries map[string]ExtractionResult
	hits    int
	puts    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]ExtractionResult)}
}

func (m *memCache) Get(key string) (ExtractionResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.entries[key]
	if ok {
		m.hits++
	}
	return result, ok
}

func (m *memCache) Put(key string, result ExtractionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = result
	m.puts++
	return nil
}

func testLogo(t *testing.T) []byte {
	t.Helper()
	return encodePNG(t, solidImage(32, 32, color.NRGBA{R: 37, G: 99, B: 235, A: 255}))
}

func TestServiceExtractPersists(t *testing.T) {
	store := newMemStore()
	service := NewService(ServiceConfig{Store: store})

	result, err := service.ExtractForTenant(context.Background(), "acme", testLogo(t))
	if err != nil {
		t.Fatalf("ExtractForTenant: %v", err)
	}
	if result.Palette.Primary != "#2563eb" {
		t.Errorf("primary = %s, want #2563eb", result.Palette.Primary)
	}

	saved := store.saves["acme"]
	if len(saved) != 1 {
		t.Fatalf("store received %d saves for acme, want 1", len(saved))
	}
	if !reflect.DeepEqual(saved[0], result) {
		t.Errorf("stored result differs from returned result")
	}
}

func TestServiceCacheHit(t *testing.T) {
	cache := newMemCache()
	service := NewService(ServiceConfig{Cache: cache})
	logo := testLogo(t)

	first, err := service.ExtractForTenant(context.Background(), "acme", logo)
	if err != nil {
		t.Fatalf("first extraction: %v", err)
	}
	second, err := service.ExtractForTenant(context.Background(), "acme", logo)
	if err != nil {
		t.Fatalf("second extraction: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("cached result differs from computed result")
	}
	if cache.puts != 1 {
		t.Errorf("cache writes = %d, want 1", cache.puts)
	}
	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
}

func TestServiceCacheHitStillPersists(t *testing.T) {
	store := newMemStore()
	cache := newMemCache()
	service := NewService(ServiceConfig{Store: store, Cache: cache})
	logo := testLogo(t)

	for i := 0; i < 2; i++ {
		if _, err := service.ExtractForTenant(context.Background(), "acme", logo); err != nil {
			t.Fatalf("extraction %d: %v", i, err)
		}
	}

	// A tenant re-uploading an unchanged logo must still have its
	// configuration written, even when the palette comes from the cache.
	if got := len(store.saves["acme"]); got != 2 {
		t.Errorf("store saves = %d, want 2", got)
	}
}

func TestServiceDecodeErrorNotPersisted(t *testing.T) {
	store := newMemStore()
	service := NewService(ServiceConfig{Store: store})

	_, err := service.ExtractForTenant(context.Background(), "acme", []byte("junk"))
	if err == nil {
		t.Fatal("expected error for undecodable logo")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("error = %v, want *DecodeError", err)
	}
	if len(store.saves) != 0 {
		t.Errorf("store received %d saves, want none", len(store.saves))
	}
}

func TestServiceStoreErrorSurfaces(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	service := NewService(ServiceConfig{Store: store})

	_, err := service.ExtractForTenant(context.Background(), "acme", testLogo(t))
	if err == nil {
		t.Fatal("expected store failure to surface")
	}
	if !errors.Is(err, store.err) {
		t.Errorf("error = %v, want wrapped %v", err, store.err)
	}
}

func TestServiceContextCancelled(t *testing.T) {
	service := NewService(ServiceConfig{MaxConcurrent: 1})

	// Occupy the only worker slot so admission has to wait on the context.
	service.sem <- struct{}{}
	defer func() { <-service.sem }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ExtractForTenant(ctx, "acme", testLogo(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestServiceConcurrentExtractions(t *testing.T) {
	service := NewService(ServiceConfig{MaxConcurrent: 4})
	logo := testLogo(t)

	reference, err := service.ExtractForTenant(context.Background(), "ref", logo)
	if err != nil {
		t.Fatalf("reference extraction: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]ExtractionResult, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.ExtractForTenant(context.Background(), "acme", logo)
		}(i)
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if !reflect.DeepEqual(results[i], reference) {
			t.Errorf("goroutine %d produced a different result", i)
		}
	}
}

func TestCacheKey(t *testing.T) {
	logo := []byte{1, 2, 3}
	opts := DefaultOptions()

	if cacheKey(logo, opts) != cacheKey(logo, opts) {
		t.Error("identical inputs produced different keys")
	}

	other := opts
	other.ClusterCount = 3
	if cacheKey(logo, opts) == cacheKey(logo, other) {
		t.Error("changed options produced the same key")
	}

	if cacheKey(logo, opts) == cacheKey([]byte{1, 2, 4}, opts) {
		t.Error("changed bytes produced the same key")
	}
}
