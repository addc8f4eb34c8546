// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the AccessLink
// model — the single-use grants handed out by the access gate.
//
// Two guarantees of the access protocol live here, at the storage layer,
// because in-process locking cannot cover multiple server instances:
//
//   - Issuance: CreateLink relies on the partial unique index
//     ux_links_unused_user_video (see AutoMigrate). Of two concurrent first
//     requests for the same (user, video), exactly one insert succeeds; the
//     loser gets ErrDuplicate and re-reads the winner's row.
//
//   - Consumption: MarkLinkUsed is a compare-and-set UPDATE guarded by
//     is_used = 0. Of two concurrent consume calls on the same link, exactly
//     one transitions the row; the other observes zero affected rows and
//     gets ErrLinkSpent.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
)

// ErrLinkSpent is returned by MarkLinkUsed when the link had already been
// transitioned to used by the time the update ran.
var ErrLinkSpent = errors.New("access link already used")

// FindUnusedLink returns the unused link for (userID, videoID), or
// ErrNotFound. The partial unique index guarantees at most one such row.
func FindUnusedLink(ctx context.Context, db *gorm.DB, userID, videoID string) (*domain.AccessLink, error) {
	var l domain.AccessLink
	err := db.WithContext(ctx).
		Where("user_id = ? AND video_id = ? AND is_used = ?", userID, videoID, false).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLink inserts a new unused access link. A racing insert for the same
// (user, video) pair trips the partial unique index and is reported as
// ErrDuplicate so the caller can fall back to FindUnusedLink.
func CreateLink(ctx context.Context, db *gorm.DB, userID, videoID, destination string, expiresAt *time.Time) (*domain.AccessLink, error) {
	l := &domain.AccessLink{
		ID:              uuid.NewString(),
		VideoID:         videoID,
		UserID:          userID,
		DestinationLink: destination,
		IsUsed:          false,
		ExpiresAt:       expiresAt,
		CreatedAt:       time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return l, nil
}

// GetLink fetches a link by primary key, or ErrNotFound.
func GetLink(ctx context.Context, db *gorm.DB, id string) (*domain.AccessLink, error) {
	var l domain.AccessLink
	if err := db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// MarkLinkUsed transitions a link from unused to used, irreversibly. The
// WHERE clause makes the transition a compare-and-set: when the row was
// already used (or does not exist) no rows are affected and ErrLinkSpent is
// returned. Callers that need to distinguish a missing link must GetLink
// first.
func MarkLinkUsed(ctx context.Context, db *gorm.DB, id string, usedAt time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.AccessLink{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]any{
			"is_used": true,
			"used_at": usedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkSpent
	}
	return nil
}

// RetireLink moves an expired-but-never-consumed link out of the unused set
// so the partial unique index frees the (user, video) slot for a fresh link.
// The row stays as history with used_at NULL, which distinguishes a retired
// link from a consumed one. Same compare-and-set shape as MarkLinkUsed; a
// zero-row update reports ErrLinkSpent (a concurrent caller got there first).
func RetireLink(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).
		Model(&domain.AccessLink{}).
		Where("id = ? AND is_used = ?", id, false).
		Update("is_used", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkSpent
	}
	return nil
}
