// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Course
// model.
//
// Functions:
//
//   - CreateCourse(ctx, db, c) -> error
//     Inserts a new Course row (caller fills fields; ID/CreatedAt set here).
//
//   - CountCourses / ListCoursesPage
//     Pagination pair over active courses, ordered by creation time
//     descending.
//
//   - GetCourse(ctx, db, id) -> *domain.Course, error
//     Fetches a single course by ID, or ErrNotFound if missing.
//
//   - UpdateCourse(ctx, db, id, fields) -> error
//     Applies a partial column update; ErrNotFound when no rows matched.
//
//   - DeleteCourse(ctx, db, id) -> error
//     Soft-deletes a course; ErrNotFound when no rows matched.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
)

// CreateCourse inserts the given course, assigning a UUID primary key and a
// UTC creation timestamp.
func CreateCourse(ctx context.Context, db *gorm.DB, c *domain.Course) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.IsActive = true
	if c.Category == "" {
		c.Category = "general"
	}
	return db.WithContext(ctx).Create(c).Error
}

// CountCourses returns the total number of active courses.
func CountCourses(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("is_active = ?", true).
		Count(&total).Error
	return total, err
}

// ListCoursesPage returns a paginated slice of active courses, ordered by
// creation time descending. Use CountCourses to obtain the total for
// pagination metadata.
func ListCoursesPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Course, error) {
	var out []domain.Course
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetCourse fetches a single course by ID. If the record does not exist, it
// returns ErrNotFound.
func GetCourse(ctx context.Context, db *gorm.DB, id string) (*domain.Course, error) {
	var c domain.Course
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCourse applies a partial update to the course identified by id.
// If no rows are affected, it returns ErrNotFound.
func UpdateCourse(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCourse soft-deletes the course identified by id. If no rows are
// affected, it returns ErrNotFound.
func DeleteCourse(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Course{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
