// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file carries the request plumbing every route in the course API runs
// through: correlation IDs, structured access logs, and panic recovery.
//
//   - RequestID() gives each request a stable correlation ID, propagated via
//     X-Request-ID and stored in the Gin context. Error envelopes echo it so a
//     client report ("my video link 409'd, request_id=…") can be matched to a
//     log line.
//   - Logger() emits a structured zerolog access log per request and attaches
//     a request-scoped logger that handlers can enrich with domain fields
//     (e.g., lg.Info().Str("video_id", id).Str("link_id", linkID).Msg("…")).
//     For routes that see social handles or emails in the query string, prefer
//     RedactingLogger; this one logs the query verbatim.
//   - Recovery() converts panics into the standard JSON 500 envelope while
//     keeping the correlation ID and logging a stack trace.
//   - LoggerFrom() retrieves the request-scoped logger; callers never need a
//     nil check.
//
// Chain order matters: RequestID first, then Logger (or RedactingLogger),
// then Recovery, so panics and errors are logged with the correlation ID
// and the request-scoped fields attached.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key under which the correlation ID lives.
	requestIDKey = "requestID"
	// requestIDHeader propagates the correlation ID on requests and responses.
	requestIDHeader = "X-Request-ID"
	// loggerKey is the Gin context key for the request-scoped zerolog.Logger.
	loggerKey = "logger"
	// maxQueryLogBytes caps how much of the raw query string a log line carries.
	maxQueryLogBytes = 2048
)

// RequestID attaches (or propagates) a correlation identifier per request.
//
// An incoming X-Request-ID is reused; otherwise a UUIDv4 is minted. The ID is
// echoed on the response header and stored in the Gin context so downstream
// middleware, handlers, and the error envelope can all reference the same
// value. Place this first in the chain.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger writes one structured access log per request.
//
// Each line records method, route (falling back to the raw path on 404s),
// remote IP, user agent, referer, correlation ID, the authenticated user ID
// when auth middleware has run, request/response sizes, status, and latency.
// The level follows the outcome: error for 5xx or collected Gin errors, warn
// for 4xx, info otherwise.
//
// A request-scoped zerolog.Logger preloaded with those fields is stored in
// the context for LoggerFrom, so a handler logging a link consumption only
// has to add the domain fields it knows about.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		uid, _ := c.Get("userID")
		route := c.FullPath()
		if route == "" {
			// Unmatched route (404/405): log the raw path instead.
			route = c.Request.URL.Path
		}

		l := log.With().
			Str("request_id", ctxString(rid)).
			Str("user_id", ctxString(uid)).
			Str("method", c.Request.Method).
			Str("path", route).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referer", c.Request.Referer()).
			Str("query", clip(c.Request.URL.RawQuery, maxQueryLogBytes)).
			// ContentLength is -1 when the client did not declare one.
			Int64("bytes_in", c.Request.ContentLength).
			Logger()
		c.Set(loggerKey, &l)

		c.Next()

		out := l.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			out.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			out.Error().Msg("request")
		case status >= 400:
			out.Warn().Msg("request")
		default:
			out.Info().Msg("request")
		}
	}
}

// Recovery intercepts panics, logs a stack trace, and answers with the same
// JSON envelope the handlers use for internal errors:
//
//	{ "request_id": "...", "code": "internal_error", "message": "internal server error" }
//
// If a handler already started writing a body before panicking, only the
// status is forced to 500. Place this after Logger so the panic log carries
// the request-scoped context.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid, _ := c.Get(requestIDKey)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", ctxString(rid)).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header("Content-Type", "application/json")
					c.Header(requestIDHeader, ctxString(rid))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"request_id": ctxString(rid),
						"code":       "internal_error",
						"message":    "internal server error",
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped zerolog.Logger attached by Logger.
// Outside a logging middleware (tests, background paths) it falls back to the
// global logger, so the result is always usable.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// ctxString unwraps a Gin context value as a string, empty when absent or of
// another type.
func ctxString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// clip caps s at max bytes, appending an ellipsis when cut. max <= 0 disables
// clipping. Byte-level truncation is fine for log output.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
