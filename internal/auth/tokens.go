// Package auth provides credential primitives for the HTTP layer: an
// HS256 JWT manager covering the access/refresh token pair, and bcrypt
// password hashing. Secrets and lifetimes arrive through the config struct;
// nothing here reads the environment.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/oqilov/go-course-backend/internal/config"
)

// ErrInvalidToken is returned when a token fails parsing, signature
// verification, or expiry checks. Callers need no finer distinction; every
// failure mode reads as "not authenticated".
var ErrInvalidToken = errors.New("invalid or expired token")

// bcryptCost matches the work factor the original user store was hashed
// with; changing it only affects newly hashed passwords.
const bcryptCost = 12

// Claims is the JWT payload carried by both token kinds.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the access/refresh token pair with
// separate secrets so a leaked refresh secret cannot mint access tokens and
// vice versa.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager constructs a TokenManager from the JWT section of the
// application config.
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// SignAccess issues a short-lived access token for userID.
func (m *TokenManager) SignAccess(userID string) (string, error) {
	return m.sign(userID, m.accessSecret, m.accessTTL)
}

// SignRefresh issues a long-lived refresh token for userID.
func (m *TokenManager) SignRefresh(userID string) (string, error) {
	return m.sign(userID, m.refreshSecret, m.refreshTTL)
}

// VerifyAccess validates an access token and returns the embedded user id.
func (m *TokenManager) VerifyAccess(token string) (string, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefresh validates a refresh token and returns the embedded user id.
func (m *TokenManager) VerifyRefresh(token string) (string, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) sign(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *TokenManager) verify(token string, secret []byte) (string, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
