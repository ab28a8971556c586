package courses

import "errors"

var (
	ErrNotFound  = errors.New("course not found")
	ErrForbidden = errors.New("not authorized for this course")
)
