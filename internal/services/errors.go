// Package services contains the application's business logic: account
// lifecycle, subscription reconciliation against the live social platforms,
// the one-time video access link protocol, and course/video catalog
// management. Services own the rules; repositories own the SQL; handlers own
// the HTTP shapes.
package services

import (
	"errors"
	"fmt"

	"github.com/oqilov/go-course-backend/internal/social"
)

var (
	// ErrUserNotFound indicates the referenced user row does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures do not leak which half was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled indicates the user exists but has been deactivated.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrEmailTaken indicates the email or username is already registered.
	ErrEmailTaken = errors.New("email or username already registered")

	// ErrInvalidRefresh indicates a refresh token that failed verification or
	// does not match the one stored for the user.
	ErrInvalidRefresh = errors.New("invalid refresh token")

	// ErrInvalidInput is returned when a create/update payload fails
	// validation (blank title, negative price, missing parent).
	ErrInvalidInput = errors.New("invalid input")

	// ErrCourseNotFound indicates the referenced course does not exist or is
	// inactive.
	ErrCourseNotFound = errors.New("course not found")

	// ErrVideoNotFound indicates the referenced video does not exist or is
	// inactive.
	ErrVideoNotFound = errors.New("video not found")

	// ErrLinkNotFound indicates the referenced access link does not exist.
	ErrLinkNotFound = errors.New("access link not found")

	// ErrLinkForbidden indicates the access link belongs to another user.
	ErrLinkForbidden = errors.New("access link belongs to another user")

	// ErrLinkUsed indicates the access link was already consumed.
	ErrLinkUsed = errors.New("access link already used")

	// ErrLinkExpired indicates the access link's expiry has passed.
	ErrLinkExpired = errors.New("access link expired")
)

// SubscriptionError reports which platform subscriptions were missing when a
// gated operation was refused. Both flags reflect the reconciled state at the
// moment of the check.
type SubscriptionError struct {
	Instagram bool
	Telegram  bool
}

// Error implements the error interface.
func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription required: missing %v", e.Missing())
}

// Missing lists the platforms the user is not subscribed to, always in
// Instagram-then-Telegram order.
func (e *SubscriptionError) Missing() []string {
	var out []string
	if !e.Instagram {
		out = append(out, social.PlatformInstagram)
	}
	if !e.Telegram {
		out = append(out, social.PlatformTelegram)
	}
	return out
}
