package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

// AccessService is the gate in front of protected video content. Issuing a
// link and consuming one are both preceded by a live subscription
// reconciliation, so a lapsed subscription blocks access even when a link
// was minted earlier.
type AccessService struct {
	DB   *gorm.DB
	Subs *SubscriptionService

	// PrivateChannel is the Telegram channel the destination link points into.
	PrivateChannel string
	// LinkTTL bounds the lifetime of issued links. Zero means links never
	// expire.
	LinkTTL time.Duration
}

// NewAccessService wires an AccessService.
func NewAccessService(db *gorm.DB, subs *SubscriptionService, privateChannel string, linkTTL time.Duration) *AccessService {
	return &AccessService{DB: db, Subs: subs, PrivateChannel: privateChannel, LinkTTL: linkTTL}
}

// AccessGrant is what a successful RequestAccess returns: the reusable
// unused link plus enough video metadata to render it.
type AccessGrant struct {
	Link  *domain.AccessLink
	Video *domain.Video
}

// RequestAccess issues (or re-returns) the single-use link granting u access
// to the video.
//
// The lookup-or-create step is backed by a partial unique index on
// (user_id, video_id) for unused rows, so two racing first requests cannot
// both insert; the loser re-reads the winner's link. An unused link that has
// passed its expiry is retired (kept as history, never deleted) and replaced
// with a fresh one, so expiry never strands the user without a path to a
// consumable link.
//
// Errors: ErrVideoNotFound, *SubscriptionError, or a storage error.
func (s *AccessService) RequestAccess(ctx context.Context, u *domain.User, videoID string) (*AccessGrant, error) {
	v, err := repo.GetVideo(ctx, s.DB, videoID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !v.IsActive {
		return nil, ErrVideoNotFound
	}

	igOK, tgOK := s.Subs.Reconcile(ctx, u)
	if !igOK || !tgOK {
		return nil, &SubscriptionError{Instagram: igOK, Telegram: tgOK}
	}

	link, err := repo.FindUnusedLink(ctx, s.DB, u.ID, v.ID)
	if err == nil {
		if !link.Expired(time.Now().UTC()) {
			return &AccessGrant{Link: link, Video: v}, nil
		}
		// Expired without ever being consumed: retire the row so the unique
		// index frees the slot for a replacement. A concurrent request may
		// retire it first; both then race to mint below.
		if err := repo.RetireLink(ctx, s.DB, link.ID); err != nil && !errors.Is(err, repo.ErrLinkSpent) {
			return nil, err
		}
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	var expiresAt *time.Time
	if s.LinkTTL > 0 {
		exp := time.Now().UTC().Add(s.LinkTTL)
		expiresAt = &exp
	}
	link, err = repo.CreateLink(ctx, s.DB, u.ID, v.ID, s.destination(), expiresAt)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Lost the race to a concurrent first request; its link wins.
			link, err = repo.FindUnusedLink(ctx, s.DB, u.ID, v.ID)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &AccessGrant{Link: link, Video: v}, nil
}

// Consume marks the link used, after re-verifying subscriptions live. Checks
// run in a fixed order: existence, ownership, spent state, expiry, then the
// live check. A failed live check leaves the link unused so the user can
// re-subscribe and come back before expiry.
//
// The unused-to-used transition is a conditional update in the store, so of
// two concurrent calls exactly one succeeds and the other gets ErrLinkUsed.
func (s *AccessService) Consume(ctx context.Context, u *domain.User, linkID string) (*domain.AccessLink, error) {
	link, err := repo.GetLink(ctx, s.DB, linkID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	if link.UserID != u.ID {
		return nil, ErrLinkForbidden
	}
	if link.IsUsed {
		return nil, ErrLinkUsed
	}
	if link.Expired(time.Now().UTC()) {
		return nil, ErrLinkExpired
	}

	igOK, tgOK := s.Subs.Reconcile(ctx, u)
	if !igOK || !tgOK {
		return nil, &SubscriptionError{Instagram: igOK, Telegram: tgOK}
	}

	now := time.Now().UTC()
	if err := repo.MarkLinkUsed(ctx, s.DB, link.ID, now); err != nil {
		if errors.Is(err, repo.ErrLinkSpent) {
			return nil, ErrLinkUsed
		}
		return nil, err
	}
	link.IsUsed = true
	link.UsedAt = &now
	return link, nil
}

// destination builds the opaque invite URL carrying a fresh one-time token.
func (s *AccessService) destination() string {
	return fmt.Sprintf("https://t.me/%s?start=%s", s.PrivateChannel, newLinkToken())
}

// newLinkToken returns a URL-safe 256-bit random token.
func newLinkToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
