package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"est/internal/domain"
)

const courseColumns = `course_id, title, description, upload_date, teacher_id, teacher_name, file_url`

// CourseRepository owns row CRUD on the courses table. All filters on
// non-key columns are ALLOW FILTERING full-table scans; that reproduces
// the deployed schema and does not scale past small tables.
type CourseRepository struct {
	session *gocql.Session
}

func NewCourseRepository(session *gocql.Session) *CourseRepository {
	return &CourseRepository{session: session}
}

func (r *CourseRepository) Insert(ctx context.Context, c *domain.Course) error {
	courseID, err := parseID(c.CourseID)
	if err != nil {
		return err
	}

	var teacherID gocql.UUID
	if c.TeacherID != "" {
		if teacherID, err = parseID(c.TeacherID); err != nil {
			return err
		}
	}

	return r.session.Query(
		`INSERT INTO courses (`+courseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		courseID, c.Title, c.Description, c.UploadDate, teacherID, c.TeacherName, c.FileURL,
	).WithContext(ctx).Exec()
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	courseID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		cid, tid                             gocql.UUID
		title, description, teacher, fileURL string
		uploadDate                           time.Time
	)
	err = r.session.Query(
		`SELECT `+courseColumns+` FROM courses WHERE course_id = ?`, courseID,
	).WithContext(ctx).Scan(&cid, &title, &description, &uploadDate, &tid, &teacher, &fileURL)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.Course{
		CourseID:    idString(cid),
		Title:       title,
		Description: description,
		UploadDate:  uploadDate,
		TeacherID:   idString(tid),
		TeacherName: teacher,
		FileURL:     fileURL,
	}, nil
}

func (r *CourseRepository) ListAll(ctx context.Context) ([]domain.Course, error) {
	return r.scan(r.session.Query(`SELECT ` + courseColumns + ` FROM courses`).WithContext(ctx))
}

func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]domain.Course, error) {
	tid, err := parseID(teacherID)
	if err != nil {
		return []domain.Course{}, nil
	}
	return r.scan(r.session.Query(
		`SELECT `+courseColumns+` FROM courses WHERE teacher_id = ? ALLOW FILTERING`, tid,
	).WithContext(ctx))
}

func (r *CourseRepository) Update(ctx context.Context, id, title, description string) error {
	courseID, err := parseID(id)
	if err != nil {
		return err
	}
	return r.session.Query(
		`UPDATE courses SET title = ?, description = ? WHERE course_id = ?`,
		title, description, courseID,
	).WithContext(ctx).Exec()
}

// Delete removes the metadata row only. The backing object stays in the
// bucket; see the upload service for why orphans are kept visible.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	courseID, err := parseID(id)
	if err != nil {
		return err
	}
	return r.session.Query(
		`DELETE FROM courses WHERE course_id = ?`, courseID,
	).WithContext(ctx).Exec()
}

func (r *CourseRepository) scan(q *gocql.Query) ([]domain.Course, error) {
	iter := q.Iter()

	var (
		courses                              []domain.Course
		cid, tid                             gocql.UUID
		title, description, teacher, fileURL string
		uploadDate                           time.Time
	)
	for iter.Scan(&cid, &title, &description, &uploadDate, &tid, &teacher, &fileURL) {
		courses = append(courses, domain.Course{
			CourseID:    idString(cid),
			Title:       title,
			Description: description,
			UploadDate:  uploadDate,
			TeacherID:   idString(tid),
			TeacherName: teacher,
			FileURL:     fileURL,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}
