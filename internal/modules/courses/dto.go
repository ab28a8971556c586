package courses

import (
	"time"

	"est/internal/domain"
)

type UpdateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CourseResponse is the wire shape of a course. TeacherID is null for rows
// written without a resolvable owner, matching what clients already parse.
type CourseResponse struct {
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	UploadDate  string  `json:"upload_date"`
	TeacherID   *string `json:"teacher_id"`
	TeacherName string  `json:"teacher_name"`
	FileURL     string  `json:"file_url"`
}

func toResponse(c domain.Course) CourseResponse {
	resp := CourseResponse{
		CourseID:    c.CourseID,
		Title:       c.Title,
		Description: c.Description,
		UploadDate:  c.UploadDate.Format(time.RFC3339),
		TeacherName: c.TeacherName,
		FileURL:     c.FileURL,
	}
	if c.TeacherID != "" {
		resp.TeacherID = &c.TeacherID
	}
	return resp
}

func toResponses(list []domain.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out
}
