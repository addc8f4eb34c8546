// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Video
// model. Error semantics match the rest of the package: ErrNotFound for
// missing rows, raw gorm errors otherwise.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
)

// CreateVideo inserts the given video, assigning a UUID primary key and a UTC
// creation timestamp.
func CreateVideo(ctx context.Context, db *gorm.DB, v *domain.Video) error {
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()
	v.IsActive = true
	return db.WithContext(ctx).Create(v).Error
}

// ListCourseVideos returns the active videos of a course ordered by their
// position within the course. It returns an empty slice when the course has
// no active videos.
func ListCourseVideos(ctx context.Context, db *gorm.DB, courseID string) ([]domain.Video, error) {
	var out []domain.Video
	err := db.WithContext(ctx).
		Where("course_id = ? AND is_active = ?", courseID, true).
		Order("position asc").
		Find(&out).Error
	return out, err
}

// GetVideo fetches a single video by ID, or ErrNotFound. Callers decide how
// to treat inactive videos; the row is returned either way.
func GetVideo(ctx context.Context, db *gorm.DB, id string) (*domain.Video, error) {
	var v domain.Video
	if err := db.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVideo applies a partial update to the video identified by id.
// If no rows are affected, it returns ErrNotFound.
func UpdateVideo(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := db.WithContext(ctx).
		Model(&domain.Video{}).
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

// DeleteVideo soft-deletes the video identified by id. If no rows are
// affected, it returns ErrNotFound.
func DeleteVideo(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
