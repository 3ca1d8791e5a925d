package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gamedata-sync/core/storage"
	"gamedata-sync/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// Persisted catalog file names. The optimizer loads these three documents
// by name, so they never change between runs.
const (
	ComponentsFile    = "components.json"
	ReactorsFile      = "reactors.json"
	AuxGeneratorsFile = "auxGenerators.json"
)

// CatalogFile pairs a catalog with its persisted file name.
type CatalogFile struct {
	Name    string
	Catalog models.Catalog
}

// Files returns the set's catalogs with their file names, in persisted order.
func (s *CatalogSet) Files() []CatalogFile {
	return []CatalogFile{
		{Name: ComponentsFile, Catalog: s.Components},
		{Name: ReactorsFile, Catalog: s.Reactors},
		{Name: AuxGeneratorsFile, Catalog: s.AuxGenerators},
	}
}

// Store reads and writes the catalog documents under one data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store operates on.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path of one catalog document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads one persisted catalog. A missing document comes back wrapping
// fs.ErrNotExist, so callers can treat an absent baseline as informational
// rather than a failure.
func (s *Store) Load(name string) (models.Catalog, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, err
	}
	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
	}
	return c, nil
}

// WriteAll persists the set's three documents, pretty-printed with two-space
// indentation. Every document is marshaled before anything touches disk and
// each file is staged next to its target and renamed into place, so a failed
// run cannot leave a half-written document behind. It returns the paths
// written.
func (s *Store) WriteAll(set *CatalogSet) ([]string, error) {
	files := set.Files()
	payloads := make([][]byte, len(files))
	for i, f := range files {
		data, err := json.MarshalIndent(f.Catalog, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog %s: %w", f.Name, err)
		}
		payloads[i] = data
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", s.dir, err)
	}

	staged := make([]string, 0, len(files))
	discard := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for i, f := range files {
		tmp := s.Path(f.Name) + ".tmp"
		if err := os.WriteFile(tmp, payloads[i], 0644); err != nil {
			discard()
			return nil, fmt.Errorf("failed to stage catalog %s: %w", f.Name, err)
		}
		staged = append(staged, tmp)
	}

	written := make([]string, 0, len(files))
	for i, f := range files {
		target := s.Path(f.Name)
		if err := os.Rename(staged[i], target); err != nil {
			discard()
			return written, fmt.Errorf("failed to replace catalog %s: %w", f.Name, err)
		}
		written = append(written, target)
	}
	return written, nil
}

// Publish uploads the set's three documents to object storage under the
// given prefix, mirroring what WriteAll persists locally.
func Publish(ctx context.Context, client storage.Client, bucket, prefix string, set *CatalogSet) error {
	for _, f := range set.Files() {
		data, err := json.MarshalIndent(f.Catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog %s: %w", f.Name, err)
		}
		objectName := path.Join(prefix, f.Name)
		_, err = client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		if err != nil {
			return fmt.Errorf("failed to upload catalog %s: %w", objectName, err)
		}
	}
	return nil
}
