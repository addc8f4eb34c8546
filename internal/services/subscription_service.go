package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
	"github.com/oqilov/go-course-backend/internal/social"
)

// SubscriptionService refreshes stored subscription flags from live platform
// checks and keeps the user row in sync. It is the only writer of the
// subscription columns; handlers and other services go through Reconcile.
type SubscriptionService struct {
	DB        *gorm.DB
	Instagram social.InstagramVerifier
	Telegram  social.TelegramVerifier
}

// NewSubscriptionService wires a SubscriptionService.
func NewSubscriptionService(db *gorm.DB, ig social.InstagramVerifier, tg social.TelegramVerifier) *SubscriptionService {
	return &SubscriptionService{DB: db, Instagram: ig, Telegram: tg}
}

// Reconcile runs a live check for each platform, folds the results into the
// user's stored subscription records, and persists them when anything
// changed. The returned booleans are the live results; callers decide
// pass/fail from them without re-reading the user.
//
// Live-check preconditions differ per platform:
//   - Instagram needs a stored username; without one the result is false.
//   - Telegram needs a stored numeric external user id; without one the
//     stored flag is kept as-is (documented fallback, not a live result).
//
// Verifier failures collapse to false inside the checkers, so reconciliation
// itself never fails the request: a storage error while persisting the
// refreshed flags is logged and swallowed, and the next reconciliation
// retries the write naturally.
func (s *SubscriptionService) Reconcile(ctx context.Context, u *domain.User) (instagramOK, telegramOK bool) {
	instagramOK = false
	if u.Instagram.Username != nil && *u.Instagram.Username != "" {
		instagramOK = s.Instagram.CheckFollower(ctx, *u.Instagram.Username)
	}

	telegramOK = u.Telegram.Subscribed
	if u.Telegram.ExternalUserID != nil && *u.Telegram.ExternalUserID != "" {
		telegramOK = s.Telegram.CheckMember(ctx, *u.Telegram.ExternalUserID)
	}

	now := time.Now().UTC()
	changed := applyResult(&u.Instagram, instagramOK, now)
	changed = applyResult(&u.Telegram, telegramOK, now) || changed

	if changed {
		if err := repo.UpdateSubscriptions(ctx, s.DB, u.ID, u.Instagram, u.Telegram); err != nil {
			log.Warn().Err(err).Str("user_id", u.ID).Msg("subscription state not persisted")
		}
	}
	return instagramOK, telegramOK
}

// applyResult folds a live result into a stored record, keeping the
// verified-at invariant: set on a subscribed record, cleared otherwise.
// Reports whether the record changed.
func applyResult(rec *domain.SubscriptionRecord, live bool, now time.Time) bool {
	if rec.Subscribed == live {
		return false
	}
	rec.Subscribed = live
	if live {
		rec.VerifiedAt = &now
	} else {
		rec.VerifiedAt = nil
	}
	return true
}

// VerifyInstagram stores the user's Instagram username and immediately
// reconciles. The returned user carries the refreshed records.
func (s *SubscriptionService) VerifyInstagram(ctx context.Context, userID, username string) (*domain.User, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		u.Instagram.Username = nil
	} else {
		u.Instagram.Username = &username
	}
	if err := repo.UpdateSubscriptions(ctx, s.DB, u.ID, u.Instagram, u.Telegram); err != nil {
		return nil, err
	}
	s.Reconcile(ctx, u)
	return u, nil
}

// VerifyTelegram stores the user's Telegram identity (username and numeric
// external id) and immediately reconciles.
func (s *SubscriptionService) VerifyTelegram(ctx context.Context, userID, username, externalUserID string) (*domain.User, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		u.Telegram.Username = nil
	} else {
		u.Telegram.Username = &username
	}
	externalUserID = strings.TrimSpace(externalUserID)
	if externalUserID == "" {
		u.Telegram.ExternalUserID = nil
	} else {
		u.Telegram.ExternalUserID = &externalUserID
	}
	if err := repo.UpdateSubscriptions(ctx, s.DB, u.ID, u.Instagram, u.Telegram); err != nil {
		return nil, err
	}
	s.Reconcile(ctx, u)
	return u, nil
}

// Status reconciles and returns the user's refreshed subscription records.
func (s *SubscriptionService) Status(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.Reconcile(ctx, u)
	return u, nil
}

func (s *SubscriptionService) loadUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
