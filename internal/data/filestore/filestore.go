// Package filestore implements the user and catalog store interfaces over
// JSON documents on disk. Every mutation reads, modifies, and rewrites the
// whole document; a per-store mutex serializes writers within this process.
// There is no cross-process locking, which limits this backend to
// single-process deployments.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"handcrafted-haven/internal/data/repository"

	"go.uber.org/zap"
)

const (
	usersFile       = "users.json"
	marketplaceFile = "marketplace.json"
)

// NewRepository wires the file-backed stores rooted at dataDir. Documents
// are lazily created with seed content on first access.
func NewRepository(dataDir string, log *zap.Logger) *repository.Repository {
	return &repository.Repository{
		User:    NewUserStore(dataDir, log),
		Catalog: NewCatalogStore(dataDir, log),
	}
}

// readDocument loads the JSON document at path into doc, creating the file
// with seed content first if it does not exist. Malformed content falls back
// to the zero document rather than failing the request.
func readDocument(path string, doc any, seed func() ([]byte, error)) error {
	if err := ensureExists(path, seed); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := json.Unmarshal(content, doc); err != nil {
		// Treat a corrupt document as empty; the next write replaces it.
		return nil
	}

	return nil
}

func writeDocument(path string, doc any) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func ensureExists(path string, seed func() ([]byte, error)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content, err := seed()
	if err != nil {
		return fmt.Errorf("build seed for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}

	return nil
}
