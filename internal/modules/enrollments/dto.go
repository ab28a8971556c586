package enrollments

import (
	"time"

	"est/internal/domain"
)

type EnrollRequest struct {
	CourseID string `json:"course_id"`
}

type EnrollmentResponse struct {
	EnrollmentID   string `json:"enrollment_id"`
	StudentID      string `json:"student_id"`
	CourseID       string `json:"course_id"`
	EnrollmentDate string `json:"enrollment_date"`
	Status         string `json:"status"`
}

func toResponse(e domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:   e.EnrollmentID,
		StudentID:      e.StudentID,
		CourseID:       e.CourseID,
		EnrollmentDate: e.EnrollmentDate.Format(time.RFC3339),
		Status:         e.Status,
	}
}

// CourseSummary is the reduced course projection spliced into enrollment
// listings.
type CourseSummary struct {
	CourseID    string `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TeacherName string `json:"teacher_name"`
}

type EnrollmentDetails struct {
	EnrollmentID   string        `json:"enrollment_id"`
	EnrollmentDate string        `json:"enrollment_date"`
	Status         string        `json:"status"`
	Course         CourseSummary `json:"course"`
}
