// Package social implements the live subscription-verification capability
// consumed by the access gate: one verifier per external platform, each with
// a narrow boolean contract.
//
// Fail-closed contract: verifiers never return an error. Transport failures,
// missing credentials, malformed responses, and unrecognized membership
// states all collapse to "not subscribed". A verification error must never
// grant access.
package social

import "context"

// Platform display names, in the fixed order clients rely on when rendering
// the missing-subscription list: Instagram before Telegram.
const (
	PlatformInstagram = "Instagram"
	PlatformTelegram  = "Telegram"
)

// MembershipStatus is the closed set of channel-membership states an external
// platform can report. Unknown strings map to StatusUnknown, never to a
// subscribed state.
type MembershipStatus string

const (
	StatusCreator       MembershipStatus = "creator"
	StatusAdministrator MembershipStatus = "administrator"
	StatusMember        MembershipStatus = "member"
	StatusRestricted    MembershipStatus = "restricted"
	StatusLeft          MembershipStatus = "left"
	StatusKicked        MembershipStatus = "kicked"
	StatusUnknown       MembershipStatus = "unknown"
)

// ParseMembershipStatus maps a raw platform status string onto the closed
// enumeration. Anything outside the known set becomes StatusUnknown.
func ParseMembershipStatus(raw string) MembershipStatus {
	switch MembershipStatus(raw) {
	case StatusCreator, StatusAdministrator, StatusMember,
		StatusRestricted, StatusLeft, StatusKicked:
		return MembershipStatus(raw)
	default:
		return StatusUnknown
	}
}

// Subscribed reports whether the status counts as an active subscription.
// Only the explicit allow-set {member, administrator, creator} qualifies;
// restricted, left, kicked, and unknown do not.
func (s MembershipStatus) Subscribed() bool {
	switch s {
	case StatusCreator, StatusAdministrator, StatusMember:
		return true
	default:
		return false
	}
}

// InstagramVerifier answers whether an Instagram account currently follows
// the platform's account. Identity is the Instagram username.
type InstagramVerifier interface {
	// CheckFollower performs a live follower check. It never returns an
	// error; failures read as false.
	CheckFollower(ctx context.Context, username string) bool
}

// TelegramVerifier answers whether a Telegram user is currently a member of
// the platform's channel. Identity is the numeric Telegram user id (stored
// as a string); the channel is fixed at construction time.
type TelegramVerifier interface {
	// CheckMember performs a live membership check. It never returns an
	// error; failures read as false.
	CheckMember(ctx context.Context, externalUserID string) bool
}
