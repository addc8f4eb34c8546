// Auth HTTP handlers.
//
// This file exposes the account lifecycle endpoints:
//   - POST /auth/register
//   - POST /auth/login
//   - POST /auth/refresh-token
//   - POST /auth/logout       (authenticated)
//   - GET  /auth/me           (authenticated)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/services"
)

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30" example:"gopher42"`
	Email    string `json:"email"    binding:"required,email" example:"gopher@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"correct horse battery"`
}

// LoginRequest is the JSON payload for signing in.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required" example:"gopher@example.com"`
	Password string `json:"password" binding:"required" example:"correct horse battery"`
}

// RefreshRequest carries the refresh token to rotate.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse bundles the signed-in user with its token pair.
type AuthResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new user and returns the profile with a token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Email or username taken"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, valid email and password (8+ chars) required")
		return
	}

	u, pair, err := h.authSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			fail(c, http.StatusConflict, ErrCodeConflict, "email or username already registered")
		case errors.Is(err, services.ErrInvalidCredentials):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid email address")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not create account")
		}
		return
	}
	ok(c, http.StatusCreated, AuthResponse{User: u, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Login godoc
// @ID          login
// @Summary     Sign in
// @Description Verifies credentials and returns the profile with a token pair.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.AuthResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials"
// @Failure     403  {object}  handlers.ErrorResponse  "Account disabled"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "email and password required")
		return
	}

	u, pair, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid email or password")
		case errors.Is(err, services.ErrAccountDisabled):
			fail(c, http.StatusForbidden, ErrCodeAccountDisabled, "account is disabled")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not sign in")
		}
		return
	}
	ok(c, http.StatusOK, AuthResponse{User: u, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// RefreshToken godoc
// @ID          refreshToken
// @Summary     Rotate the token pair
// @Description Exchanges a valid refresh token for a new access/refresh pair. The old refresh token is invalidated.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RefreshRequest  true  "Refresh payload"
//
// @Success     200  {object}  services.TokenPair
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid refresh token"
// @Router      /auth/refresh-token [post]
func (h *Handlers) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "refreshToken required")
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRefresh):
			fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid refresh token")
		case errors.Is(err, services.ErrAccountDisabled):
			fail(c, http.StatusForbidden, ErrCodeAccountDisabled, "account is disabled")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not refresh session")
		}
		return
	}
	ok(c, http.StatusOK, pair)
}

// Logout godoc
// @ID          logout
// @Summary     Sign out
// @Description Invalidates the stored refresh token for the current user.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), u.ID); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not sign out")
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Current profile
// @Description Returns the authenticated user's profile, including the stored subscription snapshot.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
//
// @Success     200  {object}  domain.User
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}
	profile, err := h.authSvc.Me(c.Request.Context(), u.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load profile")
		return
	}
	ok(c, http.StatusOK, profile)
}
