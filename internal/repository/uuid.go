package repository

import "github.com/gocql/gocql"

// parseID maps a textual id onto the UUID column type. A malformed id can
// never match a stored row, so it is reported as ErrNotFound rather than a
// distinct error.
func parseID(id string) (gocql.UUID, error) {
	u, err := gocql.ParseUUID(id)
	if err != nil {
		return gocql.UUID{}, ErrNotFound
	}
	return u, nil
}

// idString renders a UUID column value, mapping the zero UUID (a null
// column) to the empty string.
func idString(u gocql.UUID) string {
	if u == (gocql.UUID{}) {
		return ""
	}
	return u.String()
}
