// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file adds the hardening headers the API sends on every response. The
// service is a JSON backend that normally sits behind a reverse proxy, so the
// set is deliberately small: no CSP (nothing here serves HTML), HSTS only when
// the operator says traffic is HTTPS end-to-end, and optional no-store cache
// controls for responses that carry access links or tokens.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SecurityOptions configures the headers SecurityHeaders emits.
//
// EnableHSTS should only be turned on when the whole path to the app is
// HTTPS, proxy hop included; the header is suppressed for plain-HTTP requests
// regardless. HSTSMaxAge defaults to 180 days when zero. NoStore adds
// Cache-Control: no-store (plus the legacy Pragma/Expires pair) for deployments
// that want one-time access link responses kept out of intermediary caches.
// EnablePolicy adds browser feature policies; non-browser clients ignore them.
type SecurityOptions struct {
	EnableHSTS   bool
	HSTSMaxAge   time.Duration
	NoStore      bool
	EnablePolicy bool
}

// SecurityHeaders returns middleware that stamps hardening headers on every
// response.
//
// Always set:
//
//	X-Content-Type-Options: nosniff
//	X-Frame-Options: DENY
//	Referrer-Policy: no-referrer
//
// Conditionally set: Permissions-Policy and X-Permitted-Cross-Domain-Policies
// (EnablePolicy), the no-store cache trio (NoStore), and
// Strict-Transport-Security (EnableHSTS, HTTPS requests only). When the
// response already carries an X-Request-ID, it is appended to
// Access-Control-Expose-Headers so browser clients can read the correlation
// ID off CORS responses.
//
// Composes cleanly with the CORS and logging middleware in any order, though
// it runs last in this API's chain so the request ID header is already there.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	maxAge := int(opt.HSTSMaxAge.Seconds())
	if maxAge <= 0 {
		maxAge = int((180 * 24 * time.Hour).Seconds())
	}
	hstsValue := "max-age=" + strconv.Itoa(maxAge) + "; includeSubDomains; preload"

	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")

		if opt.EnablePolicy {
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()")
			h.Set("X-Permitted-Cross-Domain-Policies", "none")
		}

		if opt.NoStore {
			h.Set("Cache-Control", "no-store")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		}

		// Never advertise HSTS on a plain-HTTP hop.
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		if rid := h.Get("X-Request-ID"); rid != "" {
			const expose = "Access-Control-Expose-Headers"
			switch cur := h.Get(expose); {
			case cur == "":
				h.Set(expose, "X-Request-ID")
			case !strings.Contains(cur, "X-Request-ID"):
				h.Set(expose, cur+", X-Request-ID")
			}
		}

		c.Next()
	}
}

// isHTTPS reports whether the request arrived over TLS, either directly or
// via a proxy that set X-Forwarded-Proto: https.
func isHTTPS(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
