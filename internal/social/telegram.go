// Telegram membership verification over the Bot API.
//
// The live check is getChatMember against the configured public channel; the
// returned status string is mapped through the closed MembershipStatus
// enumeration and its allow-set, never through string containment.
package social

import (
	"context"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// chatMemberAPI is the slice of the Bot API the verifier needs. It exists so
// tests can substitute a stub for *tgbotapi.BotAPI.
type chatMemberAPI interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// TelegramChecker verifies channel membership through the Telegram Bot API.
// The zero value is unusable; construct with NewTelegramChecker.
type TelegramChecker struct {
	api     chatMemberAPI
	channel string // public channel username, without @
}

// NewTelegramChecker builds a TelegramChecker for the given bot token and
// channel username (without @). When either is empty, or the Bot API rejects
// the token, it returns a checker whose live checks always read false — the
// capability stays fail-closed instead of failing startup.
func NewTelegramChecker(botToken, channel string) *TelegramChecker {
	c := &TelegramChecker{channel: channel}
	if botToken == "" || channel == "" {
		log.Warn().Msg("telegram verifier not configured; membership checks will read false")
		return c
	}
	api, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, &http.Client{
		Timeout: 10 * time.Second,
	})
	if err != nil {
		log.Error().Err(err).Msg("telegram bot api init failed; membership checks will read false")
		return c
	}
	c.api = api
	return c
}

// CheckMember reports whether the Telegram user identified by externalUserID
// is currently a member (or administrator/creator) of the channel. Any
// failure — unparseable id, cancelled context, transport error, or an
// unrecognized membership status — reads as false.
//
// The Bot API client does not thread a context through the HTTP call; the
// client's own timeout bounds the request, and ctx is honored up front.
func (c *TelegramChecker) CheckMember(ctx context.Context, externalUserID string) bool {
	if c.api == nil || externalUserID == "" {
		return false
	}
	if err := ctx.Err(); err != nil {
		return false
	}

	userID, err := strconv.ParseInt(externalUserID, 10, 64)
	if err != nil {
		log.Warn().Str("external_user_id", externalUserID).Msg("telegram external id is not numeric")
		return false
	}

	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: "@" + c.channel,
			UserID:             userID,
		},
	})
	if err != nil {
		// The Bot API reports "user not found in chat" as an error; both
		// cases read identically as not subscribed.
		log.Debug().Err(err).Int64("user_id", userID).Msg("telegram getChatMember failed")
		return false
	}

	return ParseMembershipStatus(member.Status).Subscribed()
}
