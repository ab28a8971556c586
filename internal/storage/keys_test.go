package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectKey_NeverCollides(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := NewObjectKey("report.pdf")
		assert.False(t, seen[key], "key generated twice: %s", key)
		seen[key] = true
	}
}

func TestNewObjectKey_Shape(t *testing.T) {
	key := NewObjectKey("report.pdf")

	prefix, name, ok := strings.Cut(key, "_")
	assert.True(t, ok)
	assert.Len(t, prefix, 32) // hex of 128 random bits
	assert.Equal(t, "report.pdf", name)
}

func TestOriginalNameFromKey(t *testing.T) {
	// Underscores inside the filename survive: only the first one splits.
	key := NewObjectKey("my_lecture_notes.pdf")
	assert.Equal(t, "my_lecture_notes.pdf", OriginalNameFromKey(key))

	// Keys without a prefix come back unchanged.
	assert.Equal(t, "plain.txt", OriginalNameFromKey("plain.txt"))
}

func TestReconcileFilename(t *testing.T) {
	cases := []struct {
		name        string
		displayName string
		original    string
		want        string
	}{
		{"extension added when missing", "My Report", "report.pdf", "My Report.pdf"},
		{"original extension wins", "My Report.txt", "report.pdf", "My Report.pdf"},
		{"matching extension kept", "My Report.pdf", "report.pdf", "My Report.pdf"},
		{"no original extension leaves name alone", "My Report", "report", "My Report"},
		{"empty original leaves name alone", "My Report.txt", "", "My Report.txt"},
		{"only last dot of display is the extension", "v1.2 Notes.doc", "notes.pdf", "v1.2 Notes.pdf"},
		{"last segment of original is the extension", "Archive", "data.tar.gz", "Archive.gz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReconcileFilename(tc.displayName, tc.original))
		})
	}
}
