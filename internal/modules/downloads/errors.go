package downloads

import "errors"

var ErrNotFound = errors.New("object not found")
