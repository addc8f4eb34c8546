// Package services – CourseService
//
// Course catalog management: admin-side create/update/delete and the public
// paginated listing. Categories are normalized to title case so the catalog
// filter values stay consistent regardless of how admins type them.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

// CourseService manages the course catalog.
type CourseService struct {
	DB *gorm.DB

	caser cases.Caser
}

// NewCourseService constructs a CourseService.
func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db, caser: cases.Title(language.Und)}
}

// CourseInput carries the writable course fields.
type CourseInput struct {
	Title       string
	Description string
	Thumbnail   *string
	Price       float64
	Category    string
}

// Create inserts a new course owned by instructorID.
func (s *CourseService) Create(ctx context.Context, instructorID string, in CourseInput) (*domain.Course, error) {
	title := normalizeText(in.Title)
	if title == "" || in.Price < 0 {
		return nil, ErrInvalidInput
	}
	c := &domain.Course{
		Title:        title,
		Description:  normalizeText(in.Description),
		Thumbnail:    in.Thumbnail,
		Price:        in.Price,
		Category:     s.normalizeCategory(in.Category),
		InstructorID: instructorID,
	}
	return c, repo.CreateCourse(ctx, s.DB, c)
}

// ListPage returns a page of active courses plus the total count. Invalid
// page/pageSize values fall back to defaults.
func (s *CourseService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountCourses(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Course{}, 0, nil
	}

	items, err := repo.ListCoursesPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Get fetches a single active course.
func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	c, err := repo.GetCourse(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

// Update applies the non-zero fields of in to the course.
func (s *CourseService) Update(ctx context.Context, id string, in CourseInput) (*domain.Course, error) {
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
	if in.Thumbnail != nil {
		fields["thumbnail"] = *in.Thumbnail
	}
	if in.Price > 0 {
		fields["price"] = in.Price
	}
	if c := s.normalizeCategory(in.Category); c != "" {
		fields["category"] = c
	}
	if err := repo.UpdateCourse(ctx, s.DB, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes the course.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return repo.DeleteCourse(ctx, s.DB, id)
}

// normalizeCategory trims and title-cases a category label.
func (s *CourseService) normalizeCategory(c string) string {
	c = normalizeText(c)
	if c == "" {
		return ""
	}
	return s.caser.String(strings.ToLower(c))
}

// normalizeText trims whitespace and collapses runs of it to single spaces.
func normalizeText(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
