// Subscription HTTP handlers.
//
// This file exposes the endpoints that store a user's external platform
// identities and report the reconciled subscription state:
//   - POST /subscriptions/verify-instagram
//   - POST /subscriptions/verify-telegram
//   - GET  /subscriptions/status
//
// Each endpoint runs a live reconciliation, so the returned snapshot is
// current at the time of the call, not a cached flag.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/services"
)

// VerifyInstagramRequest carries the user's Instagram handle.
type VerifyInstagramRequest struct {
	InstagramUsername string `json:"instagramUsername" binding:"required" example:"gopher.codes"`
}

// VerifyTelegramRequest carries the user's Telegram identity. The numeric
// user id is what the live membership check keys on; without it only the
// stored flag can be reported.
type VerifyTelegramRequest struct {
	TelegramUsername string `json:"telegramUsername" example:"gopher42"`
	TelegramUserID   string `json:"telegramUserId" binding:"required" example:"123456789"`
}

// SubscriptionStatusResponse is the reconciled per-platform snapshot.
type SubscriptionStatusResponse struct {
	Instagram domain.SubscriptionRecord `json:"instagram"`
	Telegram  domain.SubscriptionRecord `json:"telegram"`
	// HasAll is true when every gated platform shows subscribed.
	HasAll bool `json:"has_all"`
}

func statusResponse(u *domain.User) SubscriptionStatusResponse {
	return SubscriptionStatusResponse{
		Instagram: u.Instagram,
		Telegram:  u.Telegram,
		HasAll:    u.HasAllSubscriptions(),
	}
}

// VerifyInstagram godoc
// @ID          verifyInstagram
// @Summary     Store Instagram handle and verify
// @Description Saves the user's Instagram username and immediately runs a live follower check.
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.VerifyInstagramRequest  true  "Instagram identity"
//
// @Success     200  {object}  handlers.SubscriptionStatusResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /subscriptions/verify-instagram [post]
func (h *Handlers) VerifyInstagram(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req VerifyInstagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "instagramUsername required")
		return
	}

	updated, err := h.subSvc.VerifyInstagram(c.Request.Context(), u.ID, req.InstagramUsername)
	if err != nil {
		h.subscriptionError(c, err)
		return
	}
	ok(c, http.StatusOK, statusResponse(updated))
}

// VerifyTelegram godoc
// @ID          verifyTelegram
// @Summary     Store Telegram identity and verify
// @Description Saves the user's Telegram username and numeric id, then runs a live channel membership check.
// @Tags        Subscriptions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.VerifyTelegramRequest  true  "Telegram identity"
//
// @Success     200  {object}  handlers.SubscriptionStatusResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /subscriptions/verify-telegram [post]
func (h *Handlers) VerifyTelegram(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	var req VerifyTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "telegramUserId required")
		return
	}

	updated, err := h.subSvc.VerifyTelegram(c.Request.Context(), u.ID, req.TelegramUsername, req.TelegramUserID)
	if err != nil {
		h.subscriptionError(c, err)
		return
	}
	ok(c, http.StatusOK, statusResponse(updated))
}

// SubscriptionStatus godoc
// @ID          subscriptionStatus
// @Summary     Reconciled subscription status
// @Description Runs a live check on every platform with a stored identity and returns the refreshed snapshot.
// @Tags        Subscriptions
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  handlers.SubscriptionStatusResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /subscriptions/status [get]
func (h *Handlers) SubscriptionStatus(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	updated, err := h.subSvc.Status(c.Request.Context(), u.ID)
	if err != nil {
		h.subscriptionError(c, err)
		return
	}
	ok(c, http.StatusOK, statusResponse(updated))
}

func (h *Handlers) subscriptionError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update subscription state")
}
