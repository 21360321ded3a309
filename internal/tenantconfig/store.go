// Package tenantconfig persists per-tenant branding configuration.
package tenantconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/safenetcreations/my-invocies-sub000/internal/branding"
)

// FileStore persists extraction results as one JSON document per tenant.
// It implements branding.Store.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir, creating the directory if
// needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the tenant's palette report, replacing any previous one.
func (s *FileStore) Save(tenantID string, result branding.ExtractionResult) error {
	path, err := s.path(tenantID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette for tenant %s: %w", tenantID, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write palette for tenant %s: %w", tenantID, err)
	}
	return nil
}

// Load reads the tenant's stored palette report.
func (s *FileStore) Load(tenantID string) (branding.ExtractionResult, error) {
	path, err := s.path(tenantID)
	if err != nil {
		return branding.ExtractionResult{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return branding.ExtractionResult{}, fmt.Errorf("no palette stored for tenant %s", tenantID)
		}
		return branding.ExtractionResult{}, fmt.Errorf("failed to read palette for tenant %s: %w", tenantID, err)
	}

	var result branding.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return branding.ExtractionResult{}, fmt.Errorf("failed to decode palette for tenant %s: %w", tenantID, err)
	}
	return result, nil
}

// path maps a tenant id to its document path, rejecting ids that would
// escape the store directory.
func (s *FileStore) path(tenantID string) (string, error) {
	if tenantID == "" {
		return "", fmt.Errorf("tenant id cannot be empty")
	}
	if strings.ContainsAny(tenantID, `/\`) || strings.Contains(tenantID, "..") {
		return "", fmt.Errorf("invalid tenant id: %s", tenantID)
	}
	return filepath.Join(s.dir, tenantID+".json"), nil
}
