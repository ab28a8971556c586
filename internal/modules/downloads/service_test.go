package downloads

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"est/internal/storage"
)

// fakeStore serves objects from memory and stages them to disk the way the
// real store does.
type fakeStore struct {
	objects map[string][]byte
	stats   map[string]storage.ObjectStat
}

func (f *fakeStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, meta storage.ObjectMetadata) error {
	return nil
}

func (f *fakeStore) Stat(ctx context.Context, key string) (storage.ObjectStat, error) {
	stat, ok := f.stats[key]
	if !ok {
		return storage.ObjectStat{}, storage.ErrObjectNotFound
	}
	return stat, nil
}

func (f *fakeStore) FetchToFile(ctx context.Context, key, path string) error {
	data, ok := f.objects[key]
	if !ok {
		return storage.ErrObjectNotFound
	}
	return os.WriteFile(path, data, 0o644)
}

func (f *fakeStore) List(ctx context.Context) ([]storage.ObjectEntry, error) {
	entries := make([]storage.ObjectEntry, 0, len(f.objects))
	for key, data := range f.objects {
		entries = append(entries, storage.ObjectEntry{Key: key, Size: int64(len(data))})
	}
	return entries, nil
}

func (f *fakeStore) URLFor(key string) string { return "http://minio:9000/uploads/" + key }

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func TestDownload_StagesObjectWithReconciledFilename(t *testing.T) {
	key := "00112233445566778899aabbccddeeff_report.pdf"
	store := &fakeStore{
		objects: map[string][]byte{key: []byte("%PDF-1.4 body")},
		stats: map[string]storage.ObjectStat{
			key: {
				ContentType: "application/pdf",
				Meta: storage.ObjectMetadata{
					DisplayName:      "Week One Report",
					OriginalFilename: "report.pdf",
				},
			},
		},
	}

	info, cleanup, err := NewService(store).Download(context.Background(), key)

	assert.NoError(t, err)
	defer cleanup()

	// The display name gains the original file's extension.
	assert.Equal(t, "Week One Report.pdf", info.Filename)
	assert.Equal(t, "application/pdf", info.ContentType)
	assert.Equal(t, int64(len("%PDF-1.4 body")), info.Size)

	staged, readErr := os.ReadFile(info.Path)
	assert.NoError(t, readErr)
	assert.Equal(t, []byte("%PDF-1.4 body"), staged)
}

func TestDownload_DisplayExtensionIsReplaced(t *testing.T) {
	key := "00112233445566778899aabbccddeeff_notes.pdf"
	store := &fakeStore{
		objects: map[string][]byte{key: []byte("body")},
		stats: map[string]storage.ObjectStat{
			key: {Meta: storage.ObjectMetadata{
				DisplayName:      "My Notes.txt",
				OriginalFilename: "notes.pdf",
			}},
		},
	}

	info, cleanup, err := NewService(store).Download(context.Background(), key)

	assert.NoError(t, err)
	defer cleanup()
	assert.Equal(t, "My Notes.pdf", info.Filename, "the original extension replaces the display one")
}

func TestDownload_MissingDisplayNameFallsBackToKeySuffix(t *testing.T) {
	key := "00112233445566778899aabbccddeeff_plain.txt"
	store := &fakeStore{
		objects: map[string][]byte{key: []byte("body")},
		stats:   map[string]storage.ObjectStat{key: {}},
	}

	info, cleanup, err := NewService(store).Download(context.Background(), key)

	assert.NoError(t, err)
	defer cleanup()
	assert.Equal(t, "plain.txt", info.Filename)
}

func TestDownload_MissingObjectIsNotFound(t *testing.T) {
	store := &fakeStore{objects: map[string][]byte{}, stats: map[string]storage.ObjectStat{}}

	_, _, err := NewService(store).Download(context.Background(), "nope_missing.txt")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownload_CleanupRemovesStagedFile(t *testing.T) {
	key := "00112233445566778899aabbccddeeff_tmp.txt"
	store := &fakeStore{
		objects: map[string][]byte{key: []byte("body")},
		stats:   map[string]storage.ObjectStat{key: {}},
	}

	info, cleanup, err := NewService(store).Download(context.Background(), key)
	assert.NoError(t, err)

	cleanup()
	_, statErr := os.Stat(info.Path)
	assert.True(t, os.IsNotExist(statErr), "the staged file must be gone after cleanup")

	// A second cleanup is harmless.
	cleanup()
}

func TestDownload_ObjectGoneBetweenStatAndFetch(t *testing.T) {
	key := "00112233445566778899aabbccddeeff_gone.txt"
	store := &fakeStore{
		objects: map[string][]byte{}, // stat answers, fetch does not
		stats:   map[string]storage.ObjectStat{key: {}},
	}

	_, _, err := NewService(store).Download(context.Background(), key)

	assert.ErrorIs(t, err, ErrNotFound)
}
