// Instagram follower verification.
//
// There is no reliable public API for checking whether an arbitrary account
// follows another; a real integration needs the Instagram Graph API with a
// reviewed app and business account. Until that exists, this checker is an
// explicit placeholder that always reads false, which keeps the gate closed
// rather than open. The access gate consumes the InstagramVerifier interface,
// so a real implementation (or a test stub) drops in without touching gate
// logic.
package social

import (
	"context"

	"github.com/rs/zerolog/log"
)

// InstagramChecker is the placeholder follower verifier. Credentials are
// retained for a future Graph API implementation.
type InstagramChecker struct {
	accessToken string
	accountID   string
}

// NewInstagramChecker builds the placeholder checker. Empty credentials are
// accepted; the checker reads false either way.
func NewInstagramChecker(accessToken, accountID string) *InstagramChecker {
	if accessToken == "" {
		log.Warn().Msg("instagram verifier not configured; follower checks will read false")
	}
	return &InstagramChecker{accessToken: accessToken, accountID: accountID}
}

// CheckFollower always reports false until a real follower check exists.
// Failing closed here means users cannot pass the gate on the strength of an
// unverifiable claim.
func (c *InstagramChecker) CheckFollower(ctx context.Context, username string) bool {
	if username == "" {
		return false
	}
	if err := ctx.Err(); err != nil {
		return false
	}
	log.Debug().Str("username", username).Msg("instagram follower check not implemented; reading false")
	return false
}
