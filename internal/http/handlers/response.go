// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints,
// including structured error envelopes, consistent JSON serialization, and
// helpers for common HTTP patterns. Every failure path produces the same
// envelope so clients can branch on the stable `code` field.
//
// Example error response:
//
//	HTTP/1.1 403 Forbidden
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "subscription_required",
//	  "message": "subscribe to the required channels to continue",
//	  "subscribed": { "instagram": true, "telegram": false },
//	  "missing": ["Telegram"]
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oqilov/go-course-backend/internal/http/middleware"
	"github.com/oqilov/go-course-backend/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
//
// Fields:
//   - RequestID: Optional correlation ID, echoed from X-Request-ID header, used
//     to correlate server logs with client-side errors.
//   - Code: A stable, machine-readable string (see errors.go constants).
//   - Message: A human-readable error description, safe for display to users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// SubscriptionState mirrors the user's live per-platform results in
// subscription-gated rejections.
type SubscriptionState struct {
	Instagram bool `json:"instagram"`
	Telegram  bool `json:"telegram"`
}

// SubscriptionErrorResponse extends the error envelope with the per-platform
// detail a client needs to tell the user which channel to join. The shape is a
// stable contract for all three subscription-gated rejection paths.
type SubscriptionErrorResponse struct {
	ErrorResponse
	Subscribed SubscriptionState `json:"subscribed"`
	// Missing platform names, Instagram before Telegram.
	Missing []string `json:"missing" example:"Telegram"`
}

// fail aborts the request with a structured error and logs server-side errors.
//
// It constructs an ErrorResponse, writes it as JSON with the given HTTP status,
// and calls gin.Context.AbortWithStatusJSON to stop further processing.
//
// Server errors (>=500) are logged using the request-scoped logger from middleware.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failSubscription aborts a gated request with 403 and the per-platform
// rejection payload.
func failSubscription(c *gin.Context, serr *services.SubscriptionError) {
	missing := serr.Missing()
	if missing == nil {
		missing = []string{}
	}
	c.AbortWithStatusJSON(http.StatusForbidden, SubscriptionErrorResponse{
		ErrorResponse: ErrorResponse{
			RequestID: c.Writer.Header().Get("X-Request-ID"),
			Code:      ErrCodeSubscriptionRequired,
			Message:   "subscribe to the required channels to continue",
		},
		Subscribed: SubscriptionState{Instagram: serr.Instagram, Telegram: serr.Telegram},
		Missing:    missing,
	})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
