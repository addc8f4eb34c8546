// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, database paths, auth token secrets,
// external platform credentials, rate limiting, and observability. Core logic
// never reads the environment directly — everything arrives through this
// struct at construction time.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oqilov/go-course-backend/internal/sysutil"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// JWTConfig holds token signing secrets and lifetimes for the auth layer.
type JWTConfig struct {
	AccessSecret  string        // ACCESS_TOKEN_SECRET
	RefreshSecret string        // REFRESH_TOKEN_SECRET
	AccessTTL     time.Duration // ACCESS_TOKEN_EXPIRE (e.g. 15m)
	RefreshTTL    time.Duration // REFRESH_TOKEN_EXPIRE (e.g. 168h)
}

// TelegramConfig configures the Telegram membership verifier and the private
// content channel that access links point into.
type TelegramConfig struct {
	BotToken string // TELEGRAM_BOT_TOKEN
	// Channel is the public channel users must be members of (without @).
	Channel string // TELEGRAM_CHANNEL_USERNAME
	// PrivateChannel hosts the actual video content; falls back to Channel
	// when unset.
	PrivateChannel string // TELEGRAM_PRIVATE_CHANNEL_USERNAME
}

// InstagramConfig configures the Instagram follower verifier. The live check
// is a pluggable capability; credentials are carried here for implementations
// that have one.
type InstagramConfig struct {
	AccessToken string // INSTAGRAM_ACCESS_TOKEN
	AccountID   string // INSTAGRAM_ACCOUNT_ID
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-course-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	DBPath string // SQLite path
	// LinkTTL bounds how long an issued access link stays consumable.
	// Zero means links never expire.
	LinkTTL time.Duration

	// Auth
	JWT JWTConfig

	// External platforms
	Telegram  TelegramConfig
	Instagram InstagramConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		// App
		DBPath:  getenv("DB_PATH", "app.db"),
		LinkTTL: getdur("LINK_TTL", 0),

		// Auth
		JWT: JWTConfig{
			AccessSecret:  getenv("ACCESS_TOKEN_SECRET", ""),
			RefreshSecret: getenv("REFRESH_TOKEN_SECRET", ""),
			AccessTTL:     getdur("ACCESS_TOKEN_EXPIRE", 15*time.Minute),
			RefreshTTL:    getdur("REFRESH_TOKEN_EXPIRE", 7*24*time.Hour),
		},

		// External platforms
		Telegram: TelegramConfig{
			BotToken:       getenv("TELEGRAM_BOT_TOKEN", ""),
			Channel:        strings.TrimPrefix(getenv("TELEGRAM_CHANNEL_USERNAME", ""), "@"),
			PrivateChannel: strings.TrimPrefix(getenv("TELEGRAM_PRIVATE_CHANNEL_USERNAME", ""), "@"),
		},
		Instagram: InstagramConfig{
			AccessToken: getenv("INSTAGRAM_ACCESS_TOKEN", ""),
			AccountID:   getenv("INSTAGRAM_ACCOUNT_ID", ""),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-course-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	cfg.Telegram.PrivateChannel = sysutil.FirstNonEmpty(cfg.Telegram.PrivateChannel, cfg.Telegram.Channel)

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.LinkTTL < 0 {
		return cfg, errors.New("LINK_TTL must be >= 0")
	}
	if strings.TrimSpace(cfg.JWT.AccessSecret) == "" {
		return cfg, errors.New("ACCESS_TOKEN_SECRET must not be empty")
	}
	if strings.TrimSpace(cfg.JWT.RefreshSecret) == "" {
		return cfg, errors.New("REFRESH_TOKEN_SECRET must not be empty")
	}
	if cfg.JWT.AccessTTL <= 0 || cfg.JWT.RefreshTTL <= 0 {
		return cfg, errors.New("token lifetimes must be positive durations")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- env helpers ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if sysutil.IsTruthy(v) {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
