package storage

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewObjectKey builds a bucket key from a random 128-bit hex prefix and the
// original filename. Two uploads never collide, and the original filename
// stays recoverable by splitting on the first underscore.
func NewObjectKey(originalFilename string) string {
	u := uuid.New()
	return hex.EncodeToString(u[:]) + "_" + originalFilename
}

// OriginalNameFromKey recovers the filename part of a generated key. Keys
// that were not generated by NewObjectKey come back unchanged.
func OriginalNameFromKey(key string) string {
	if _, name, ok := strings.Cut(key, "_"); ok {
		return name
	}
	return key
}

// ReconcileFilename splices the extension of the original filename onto the
// display name's base. The extension from the original always wins, because
// the display name is free text chosen by the uploader and may carry no
// extension or a wrong one.
func ReconcileFilename(displayName, originalFilename string) string {
	dot := strings.LastIndex(originalFilename, ".")
	if dot < 0 {
		return displayName
	}
	ext := originalFilename[dot+1:]

	if i := strings.LastIndex(displayName, "."); i >= 0 {
		return displayName[:i] + "." + ext
	}
	return displayName + "." + ext
}
