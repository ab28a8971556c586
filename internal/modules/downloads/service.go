package downloads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"est/internal/domain"
	"est/internal/storage"
)

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// DownloadInfo points at a staged temporary file holding the object bytes.
type DownloadInfo struct {
	Path        string
	ContentType string
	Filename    string
	Size        int64
}

// Download stages the object into a temporary file and returns it together
// with a cleanup that removes the file. The caller must run cleanup on
// every exit path, including a failed send. The suggested filename is the
// stored display name with the original filename's extension spliced on.
func (s *Service) Download(ctx context.Context, key string) (*DownloadInfo, func(), error) {
	stat, err := s.store.Stat(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	displayName := stat.Meta.DisplayName
	if displayName == "" {
		displayName = storage.OriginalNameFromKey(key)
	}
	filename := storage.ReconcileFilename(displayName, stat.Meta.OriginalFilename)

	tmp, err := os.CreateTemp("", "est-download-*")
	if err != nil {
		return nil, nil, fmt.Errorf("stage download: %w", err)
	}
	path := tmp.Name()
	tmp.Close()

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove staged download %s: %v", path, err)
		}
	}

	if err := s.store.FetchToFile(ctx, key, path); err != nil {
		cleanup()
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("stage download: %w", err)
	}

	return &DownloadInfo{
		Path:        path,
		ContentType: stat.ContentType,
		Filename:    filename,
		Size:        fi.Size(),
	}, cleanup, nil
}

// ListFiles enumerates the bucket with per-object metadata.
func (s *Service) ListFiles(ctx context.Context) ([]domain.FileInfo, error) {
	return storage.ListWithMetadata(ctx, s.store)
}

// Ping checks that the object store answers.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
