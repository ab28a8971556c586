package domain

import "time"

// Course is a metadata row in Cassandra referencing an uploaded object.
// TeacherID is empty when the row was written without a resolvable owner.
// CourseID, TeacherID and FileURL are immutable after creation.
type Course struct {
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UploadDate  time.Time `json:"upload_date"`
	TeacherID   string    `json:"teacher_id"`
	TeacherName string    `json:"teacher_name"`
	FileURL     string    `json:"file_url"`
}
