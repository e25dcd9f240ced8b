package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadResult is the metadata the object-storage collaborator hands back
// for a stored image.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// StorageClient is the object-storage collaborator consumed by the image
// cascade deletes. Production wires a hosted provider; development and
// tests use the disk implementation below.
type StorageClient interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type DiskStorage struct {
	baseDir string
	baseURL string
}

func NewDiskStorage(baseDir, baseURL string) *DiskStorage {
	return &DiskStorage{baseDir: baseDir, baseURL: baseURL}
}

func (s *DiskStorage) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	publicID := uuid.New().String() + filepath.Ext(filename)
	dest := filepath.Join(s.baseDir, publicID)

	f, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      s.baseURL + "/" + publicID,
		PublicID: publicID,
	}, nil
}

func (s *DiskStorage) Delete(ctx context.Context, publicID string) error {
	err := os.Remove(filepath.Join(s.baseDir, publicID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
