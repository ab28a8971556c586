package domain

import "time"

// FileInfo describes one object in the uploads bucket, augmented with the
// descriptive metadata attached at upload time.
type FileInfo struct {
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	Description  string    `json:"description"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}
