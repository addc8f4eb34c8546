package config

import (
	"strings"
	"testing"
	"time"
)

// setRequired sets the env vars without which Load refuses to start.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.APIBasePath != "/api" {
		t.Errorf("APIBasePath = %q, want /api", cfg.APIBasePath)
	}
	if cfg.DBPath != "app.db" {
		t.Errorf("DBPath = %q, want app.db", cfg.DBPath)
	}
	if cfg.LinkTTL != 0 {
		t.Errorf("LinkTTL = %v, want 0 (no expiry)", cfg.LinkTTL)
	}
	if cfg.JWT.AccessTTL != 15*time.Minute {
		t.Errorf("AccessTTL = %v, want 15m", cfg.JWT.AccessTTL)
	}
	if cfg.JWT.RefreshTTL != 7*24*time.Hour {
		t.Errorf("RefreshTTL = %v, want 168h", cfg.JWT.RefreshTTL)
	}
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Errorf("rate limits = (%v, %d), want (5, 10)", cfg.RateRPS, cfg.RateBurst)
	}
	if cfg.OTEL.Enabled {
		t.Errorf("OTEL.Enabled = true, want false by default")
	}
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with no secrets: expected error, got nil")
	}

	t.Setenv("ACCESS_TOKEN_SECRET", "a")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "REFRESH_TOKEN_SECRET") {
		t.Fatalf("Load() with only access secret: got %v", err)
	}
}

func TestLoad_TelegramChannelNormalization(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHANNEL_USERNAME", "@mychannel")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.Channel != "mychannel" {
		t.Errorf("Channel = %q, want leading @ stripped", cfg.Telegram.Channel)
	}
	// Private channel falls back to the public one when unset.
	if cfg.Telegram.PrivateChannel != "mychannel" {
		t.Errorf("PrivateChannel = %q, want fallback to Channel", cfg.Telegram.PrivateChannel)
	}
}

func TestLoad_PrivateChannelOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHANNEL_USERNAME", "public")
	t.Setenv("TELEGRAM_PRIVATE_CHANNEL_USERNAME", "@secret_videos")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Telegram.PrivateChannel != "secret_videos" {
		t.Errorf("PrivateChannel = %q, want secret_videos", cfg.Telegram.PrivateChannel)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero read timeout", "READ_TIMEOUT", "0s"},
		{"negative link ttl", "LINK_TTL", "-1h"},
		{"negative rate", "RATE_RPS", "-1"},
		{"zero burst", "RATE_BURST", "0"},
		{"sampler out of range", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
		{"zero access ttl", "ACCESS_TOKEN_EXPIRE", "0s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("Load() with %s=%s: expected error", tc.key, tc.val)
			}
		})
	}
}

func TestLoad_Normalization(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("GIN_MODE", "bogus")
	t.Setenv("API_BASE_PATH", "api/v2/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release fallback", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Errorf("APIBasePath = %q, want /api/v2", cfg.APIBasePath)
	}
}

func TestLoad_CORSSplit(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins = %v, want 2 entries", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins[1] = %q", cfg.CORS.AllowedOrigins[1])
	}
}

func TestMustLoad_PanicsOnInvalid(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	defer func() {
		if recover() == nil {
			t.Fatal("MustLoad() did not panic on invalid config")
		}
	}()
	MustLoad()
}
