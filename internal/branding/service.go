package branding

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
)

// maxDefaultWorkers caps the default concurrency: clustering is CPU-heavy
// compared to ordinary request handling.
const maxDefaultWorkers = 8

// Store persists extraction results keyed by tenant.
type Store interface {
	Save(tenantID string, result ExtractionResult) error
}

// Cache holds extraction results keyed by logo content and options, so
// re-uploading an unchanged logo does not re-run clustering.
type Cache interface {
	Get(key string) (ExtractionResult, bool)
	Put(key string, result ExtractionResult) error
}

// ServiceConfig configures a Service. All fields are optional.
type ServiceConfig struct {
	// Logger receives structured extraction logs. Defaults to a no-op logger.
	Logger hclog.Logger

	// MaxConcurrent bounds simultaneous extractions. Defaults to
	// GOMAXPROCS, capped at maxDefaultWorkers.
	MaxConcurrent int

	// Options are the extraction parameters applied to every logo.
	Options Options

	// Store, when set, receives every successful result keyed by tenant.
	Store Store

	// Cache, when set, short-circuits repeat extractions of identical bytes.
	Cache Cache
}

// Service runs logo extractions on behalf of upload handlers with bounded
// concurrency. The engine itself is a pure function; the Service adds the
// caller-side policy around it: admission control, caching, persistence and
// logging.
type Service struct {
	logger hclog.Logger
	sem    chan struct{}
	opts   Options
	store  Store
	cache  Cache
}

// NewService creates a Service from the given configuration.
func NewService(cfg ServiceConfig) *Service {
	workers := cfg.MaxConcurrent
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
		if workers > maxDefaultWorkers {
			workers = maxDefaultWorkers
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Service{
		logger: logger.Named("branding"),
		sem:    make(chan struct{}, workers),
		opts:   cfg.Options.normalized(),
		store:  cfg.Store,
		cache:  cfg.Cache,
	}
}

// ExtractForTenant derives the brand palette for one tenant's logo. The call
// blocks until a worker slot is free or ctx is done; once an extraction has
// started it runs to completion (a single extraction finishes well under a
// second at default parameters).
func (s *Service) ExtractForTenant(ctx context.Context, tenantID string, logo []byte) (ExtractionResult, error) {
	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		return ExtractionResult{}, ctx.Err()
	}

	key := cacheKey(logo, s.opts)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			s.logger.Debug("palette served from cache", "tenant", tenantID, "key", key)
			return s.persist(tenantID, result)
		}
	}

	start := time.Now()
	result, err := Extract(logo, s.opts)
	if err != nil {
		s.logger.Error("palette extraction failed", "tenant", tenantID, "error", err)
		return ExtractionResult{}, err
	}
	s.logger.Debug("palette extracted",
		"tenant", tenantID,
		"duration", time.Since(start),
		"primary", result.Palette.Primary,
		"compliant", result.WCAGCompliant,
	)

	if s.cache != nil {
		if err := s.cache.Put(key, result); err != nil {
			// A cold cache only costs a recompute next time.
			s.logger.Warn("palette cache write failed", "tenant", tenantID, "error", err)
		}
	}

	return s.persist(tenantID, result)
}

// persist writes the result to the tenant store when one is configured.
func (s *Service) persist(tenantID string, result ExtractionResult) (ExtractionResult, error) {
	if s.store == nil {
		return result, nil
	}
	if err := s.store.Save(tenantID, result); err != nil {
		return ExtractionResult{}, fmt.Errorf("persist palette for tenant %s: %w", tenantID, err)
	}
	return result, nil
}

// cacheKey derives a deterministic key from the logo bytes and the
// extraction options, so changed parameters never serve stale palettes.
func cacheKey(logo []byte, opts Options) string {
	h := sha256.New()
	h.Write(logo)
	fmt.Fprintf(h, "|%d|%d|%d|%g|%g|%g",
		opts.MaxDimension, opts.ClusterCount, opts.SampleStride,
		opts.MinBrightness, opts.MaxBrightness, opts.MinSaturation)
	return fmt.Sprintf("%x", h.Sum(nil)[:16])
}
