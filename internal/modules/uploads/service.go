package uploads

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"est/internal/domain"
	"est/internal/identity"
	"est/internal/storage"
)

const unknownTeacher = "Unknown Teacher"

type Service struct {
	store    storage.Store
	courses  CourseInserter
	resolver identity.Resolver
}

func NewService(store storage.Store, courses CourseInserter, resolver identity.Resolver) *Service {
	return &Service{store: store, courses: courses, resolver: resolver}
}

// Publish runs the two-write publication workflow: object first, metadata
// row second. The object write is required; a metadata insert failure is
// reported through PublishResult.RecordCreated instead of failing the
// request, leaving the object orphaned but retrievable. Nothing deletes
// the orphan: the flag is the caller's signal to reconcile.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*PublishResult, error) {
	displayName := input.CustomName
	if displayName == "" {
		displayName = input.Filename
	}

	teacherID, teacherName := s.resolveOwner(ctx, input.Token)

	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.NewObjectKey(input.Filename)
	meta := storage.ObjectMetadata{
		DisplayName:      displayName,
		OriginalFilename: input.Filename,
		Description:      input.Description,
	}
	if err := s.store.Put(ctx, key, input.Data, input.Size, contentType, meta); err != nil {
		return nil, err
	}

	fileURL := s.store.URLFor(key)
	courseID := uuid.New().String()

	recordCreated := false
	course := &domain.Course{
		CourseID:    courseID,
		Title:       displayName,
		Description: input.Description,
		UploadDate:  time.Now(),
		TeacherID:   teacherID,
		TeacherName: teacherName,
		FileURL:     fileURL,
	}
	if err := s.courses.Insert(ctx, course); err != nil {
		log.Printf("course record insert failed, object %s has no course row: %v", key, err)
	} else {
		recordCreated = true
	}

	return &PublishResult{
		FileName:      input.Filename,
		DisplayName:   displayName,
		Description:   input.Description,
		ObjectName:    key,
		URL:           fileURL,
		Size:          input.Size,
		CourseID:      courseID,
		RecordCreated: recordCreated,
	}, nil
}

// resolveOwner is permissive: uploads without a resolvable principal are
// recorded under a sentinel owner with a freshly generated teacher id, and
// a principal whose id is not a UUID gets a generated one too, since the
// teacher_id column cannot hold anything else.
func (s *Service) resolveOwner(ctx context.Context, token string) (teacherID, teacherName string) {
	if token != "" {
		if p, err := s.resolver.Resolve(ctx, token); err == nil {
			id := p.UserID
			if _, err := uuid.Parse(id); err != nil {
				log.Printf("teacher id %q is not a UUID, generating one", id)
				id = uuid.New().String()
			}
			name := p.Username
			if name == "" {
				name = unknownTeacher
			}
			return id, name
		}
	}
	return uuid.New().String(), unknownTeacher
}

// ListFiles enumerates the bucket with per-object metadata.
func (s *Service) ListFiles(ctx context.Context) ([]domain.FileInfo, error) {
	return storage.ListWithMetadata(ctx, s.store)
}

// Ping checks that the object store answers.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
