package courses

import (
	"context"
	"errors"

	"est/internal/domain"
	"est/internal/repository"
)

type Service struct {
	courses CourseRepository
}

func NewService(courses CourseRepository) *Service {
	return &Service{courses: courses}
}

// List returns the role-scoped course listing: teachers see only their own
// courses, admins and students see everything.
func (s *Service) List(ctx context.Context, p domain.Principal) ([]domain.Course, error) {
	if p.Role == domain.RoleTeacher {
		return s.courses.ListByTeacher(ctx, p.UserID)
	}
	return s.courses.ListAll(ctx)
}

// Get fetches the course by id for any role, then applies the ownership
// check on the fetched row. The order matters: a missing row is always
// NotFound, never Forbidden, because ownership cannot be evaluated without
// the row.
func (s *Service) Get(ctx context.Context, p domain.Principal, id string) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Role == domain.RoleTeacher && course.TeacherID != p.UserID {
		return nil, ErrForbidden
	}
	return course, nil
}

// Update changes title and/or description. Only admins and teachers may
// update at all; teachers additionally must own the row, checked after the
// fetch like Get.
func (s *Service) Update(ctx context.Context, p domain.Principal, id string, req UpdateCourseRequest) (*domain.Course, error) {
	if p.Role != domain.RoleAdmin && p.Role != domain.RoleTeacher {
		return nil, ErrForbidden
	}

	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.Role == domain.RoleTeacher && course.TeacherID != p.UserID {
		return nil, ErrForbidden
	}

	title := course.Title
	if req.Title != nil {
		title = *req.Title
	}
	description := course.Description
	if req.Description != nil {
		description = *req.Description
	}

	if err := s.courses.Update(ctx, id, title, description); err != nil {
		return nil, err
	}

	course.Title = title
	course.Description = description
	return course, nil
}

// Delete removes the metadata row. The backing object is left in the
// bucket; nothing cleans it up today.
func (s *Service) Delete(ctx context.Context, p domain.Principal, id string) error {
	if p.Role != domain.RoleAdmin && p.Role != domain.RoleTeacher {
		return ErrForbidden
	}

	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if p.Role == domain.RoleTeacher && course.TeacherID != p.UserID {
		return ErrForbidden
	}

	return s.courses.Delete(ctx, id)
}
