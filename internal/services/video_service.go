package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

// VideoService manages videos inside the course catalog. Listing and
// metadata lookups are ungated; retrieving the actual destination link goes
// through AccessService instead.
type VideoService struct {
	DB *gorm.DB
}

// NewVideoService constructs a VideoService.
func NewVideoService(db *gorm.DB) *VideoService {
	return &VideoService{DB: db}
}

// VideoInput carries the writable video fields.
type VideoInput struct {
	CourseID    string
	Title       string
	Description string
	Position    int
	Duration    int
}

// Create inserts a new video into its course. The course must exist and be
// active.
func (s *VideoService) Create(ctx context.Context, in VideoInput) (*domain.Video, error) {
	title := normalizeText(in.Title)
	if title == "" || in.CourseID == "" || in.Duration < 0 {
		return nil, ErrInvalidInput
	}

	c, err := repo.GetCourse(ctx, s.DB, in.CourseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrCourseNotFound
	}

	v := &domain.Video{
		CourseID:    in.CourseID,
		Title:       title,
		Description: normalizeText(in.Description),
		Position:    in.Position,
		Duration:    in.Duration,
	}
	return v, repo.CreateVideo(ctx, s.DB, v)
}

// ListByCourse returns the active videos of a course in position order.
func (s *VideoService) ListByCourse(ctx context.Context, courseID string) ([]domain.Video, error) {
	if _, err := repo.GetCourse(ctx, s.DB, courseID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return repo.ListCourseVideos(ctx, s.DB, courseID)
}

// Get fetches a single active video's metadata.
func (s *VideoService) Get(ctx context.Context, id string) (*domain.Video, error) {
	v, err := repo.GetVideo(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !v.IsActive {
		return nil, ErrVideoNotFound
	}
	return v, nil
}

// Update applies the non-zero fields of in to the video.
func (s *VideoService) Update(ctx context.Context, id string, in VideoInput) (*domain.Video, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if t := normalizeText(in.Title); t != "" {
		fields["title"] = t
	}
	if d := normalizeText(in.Description); d != "" {
		fields["description"] = d
	}
	if in.Position > 0 {
		fields["position"] = in.Position
	}
	if in.Duration > 0 {
		fields["duration"] = in.Duration
	}
	if err := repo.UpdateVideo(ctx, s.DB, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the video.
func (s *VideoService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return repo.DeleteVideo(ctx, s.DB, id)
}
