package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectMetadata is the descriptive metadata attached to every stored
// object. It travels with the object, not with the course row, so the
// bucket stays self-describing even when no course references a key.
type ObjectMetadata struct {
	DisplayName      string
	OriginalFilename string
	Description      string
}

// ObjectStat is the result of a metadata-only lookup.
type ObjectStat struct {
	ContentType string
	Meta        ObjectMetadata
}

// ObjectEntry is one element of a bucket enumeration.
type ObjectEntry struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Store wraps the content-addressable bucket. Keys are generated fresh per
// upload (see NewObjectKey), so Put never races a concurrent writer on the
// same key.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, meta ObjectMetadata) error
	Stat(ctx context.Context, key string) (ObjectStat, error)
	// FetchToFile downloads the object into path. The caller owns the file
	// and its removal on every exit path.
	FetchToFile(ctx context.Context, key, path string) error
	List(ctx context.Context) ([]ObjectEntry, error)
	// URLFor returns the resolvable address stored in course rows.
	URLFor(key string) string
	Ping(ctx context.Context) error
}
