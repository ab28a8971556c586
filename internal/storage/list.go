package storage

import (
	"context"
	"log"

	"est/internal/domain"
)

// ListWithMetadata enumerates the bucket and augments every entry with a
// per-key Stat to recover the descriptive metadata. A Stat failure degrades
// that one entry to the key as display name and an empty description; it
// never fails the whole listing.
func ListWithMetadata(ctx context.Context, store Store) ([]domain.FileInfo, error) {
	entries, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]domain.FileInfo, 0, len(entries))
	for _, e := range entries {
		displayName := e.Key
		description := ""

		stat, err := store.Stat(ctx, e.Key)
		if err != nil {
			log.Printf("stat %q failed, listing without metadata: %v", e.Key, err)
		} else {
			if stat.Meta.DisplayName != "" {
				displayName = stat.Meta.DisplayName
			}
			description = stat.Meta.Description
		}

		files = append(files, domain.FileInfo{
			Name:         e.Key,
			DisplayName:  displayName,
			Description:  description,
			Size:         e.Size,
			LastModified: e.LastModified,
			URL:          store.URLFor(e.Key),
		})
	}
	return files, nil
}
