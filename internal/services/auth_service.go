package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/oqilov/go-course-backend/internal/auth"
	"github.com/oqilov/go-course-backend/internal/domain"
	"github.com/oqilov/go-course-backend/internal/repo"
)

// TokenPair is the access/refresh token bundle issued on register, login and
// refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService implements account lifecycle: registration, login, token
// refresh with rotation, logout and profile lookup. The active refresh token
// is stored on the user row, so refreshing or logging out invalidates every
// previously issued refresh token for that user.
type AuthService struct {
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

// NewAuthService wires an AuthService.
func NewAuthService(db *gorm.DB, tokens *auth.TokenManager) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// Register creates a new user account and signs it in.
//
// Returns ErrEmailTaken when the email or username is already registered and
// ErrInvalidCredentials when the email does not parse.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	exists, err := repo.UserExists(ctx, s.DB, email, username)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, username, email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	pair, err := s.issue(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("user_id", u.ID).Msg("user registered")
	return u, pair, nil
}

// Login verifies credentials and issues a fresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, nil, ErrAccountDisabled
	}

	pair, err := s.issue(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must both
// verify and match the one stored on the user row; the stored token is then
// replaced, so a refresh token can be used at most once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.Tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	if u.RefreshToken != refreshToken {
		return nil, ErrInvalidRefresh
	}
	return s.issue(ctx, u)
}

// Logout clears the stored refresh token, invalidating the session.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	err := repo.UpdateRefreshToken(ctx, s.DB, userID, "")
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// Me returns the user's profile.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *AuthService) issue(ctx context.Context, u *domain.User) (*TokenPair, error) {
	access, err := s.Tokens.SignAccess(u.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.Tokens.SignRefresh(u.ID)
	if err != nil {
		return nil, err
	}
	if err := repo.UpdateRefreshToken(ctx, s.DB, u.ID, refresh); err != nil {
		return nil, err
	}
	u.RefreshToken = refresh
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
