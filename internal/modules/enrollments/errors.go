package enrollments

import "errors"

var (
	ErrForbidden       = errors.New("only students can enroll")
	ErrCourseNotFound  = errors.New("course not found")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrValidation      = errors.New("course id is required")
)
