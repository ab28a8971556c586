package domain

import "time"

const EnrollmentActive = "active"

// Enrollment links a student to a course. Uniqueness of the
// (student, course) pair is advisory only: it is enforced by a
// read-before-write check, not by the store.
type Enrollment struct {
	EnrollmentID   string    `json:"enrollment_id"`
	StudentID      string    `json:"student_id"`
	CourseID       string    `json:"course_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Status         string    `json:"status"`
}
