// Package palettecache provides an on-disk cache of palette extraction
// results, keyed by logo content.
package palettecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
)

// DiskCache stores extraction results as JSON files under a cache directory.
// It implements branding.Cache.
type DiskCache struct {
	dir string
}

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "brandkit", "palettes"), nil
	}
	return filepath.Join(cacheDir, "brandkit", "palettes"), nil
}

// New creates a DiskCache rooted at dir. An empty dir selects
// DefaultCacheDir. The directory is created if it does not exist.
func New(dir string) (*DiskCache, error) {
	if dir == "" {
		defaultDir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = defaultDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Get returns the cached result for key, if present and readable. Corrupt
// entries are treated as misses.
func (c *DiskCache) Get(key string) (branding.ExtractionResult, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return branding.ExtractionResult{}, false
	}

	var result branding.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return branding.ExtractionResult{}, false
	}
	return result, true
}

// Put stores the result under key, overwriting any previous entry.
func (c *DiskCache) Put(key string, result branding.ExtractionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode cached palette: %w", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return fmt.Errorf("failed to write cached palette: %w", err)
	}
	return nil
}

func (c *DiskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}
