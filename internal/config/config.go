package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	// DefaultUploadLimit caps image uploads when the caller supplies none.
	DefaultUploadLimit int64 = 40 << 20

	devSessionSecret = "designfolio-dev-secret"
)

// AppConfig holds everything needed to run the portfolio server.
type AppConfig struct {
	Env         string
	ListenAddr  string
	Port        string
	DatabaseURL string
	LogLevel    string

	AdminEmail    string
	AdminPassword string
	SessionSecret string

	ResendAPIKey string
	MailFrom     string
	ContactTo    string

	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string
	UploadLimit       int64

	RedisURL       string
	AllowedOrigins []string

	SkipValidation bool
}

// Load reads configuration from the environment, filling defaults for optional keys.
func Load() AppConfig {
	port := env("PORT", "3000")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	appEnv := strings.ToLower(env("APP_ENV", env("NODE_ENV", EnvDevelopment)))

	endpoint := strings.TrimRight(env("S3_ENDPOINT", "http://localhost:9000"), "/")
	publicBase := strings.TrimRight(env("S3_PUBLIC_BASE_URL", endpoint), "/")

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" && appEnv != EnvProduction {
		sessionSecret = devSessionSecret
	}

	uploadLimit := DefaultUploadLimit
	if raw := strings.TrimSpace(os.Getenv("UPLOAD_LIMIT_BYTES")); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			uploadLimit = parsed
		}
	}

	return AppConfig{
		Env:               appEnv,
		ListenAddr:        listenAddr,
		Port:              port,
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:          env("LOG_LEVEL", "info"),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		SessionSecret:     sessionSecret,
		ResendAPIKey:      strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
		MailFrom:          env("MAIL_FROM", "Portfolio <onboarding@resend.dev>"),
		ContactTo:         strings.TrimSpace(os.Getenv("CONTACT_TO")),
		S3Endpoint:        endpoint,
		S3Region:          env("S3_REGION", "us-east-1"),
		S3Bucket:          env("S3_BUCKET", "portfolio"),
		S3AccessKeyID:     strings.TrimSpace(os.Getenv("S3_ACCESS_KEY_ID")),
		S3SecretAccessKey: strings.TrimSpace(os.Getenv("S3_SECRET_ACCESS_KEY")),
		S3PublicBaseURL:   publicBase,
		UploadLimit:       uploadLimit,
		RedisURL:          strings.TrimSpace(os.Getenv("REDIS_URL")),
		AllowedOrigins:    splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SkipValidation:    truthy(os.Getenv("SKIP_ENV_VALIDATION")),
	}
}

// IsProduction reports whether the server runs with production settings.
func (c AppConfig) IsProduction() bool {
	return c.Env == EnvProduction
}

// Validate checks required keys. It is a no-op when SKIP_ENV_VALIDATION is set.
func (c AppConfig) Validate() error {
	if c.SkipValidation {
		return nil
	}

	var errs []error
	require := func(key, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	require("DATABASE_URL", c.DatabaseURL)
	require("ADMIN_EMAIL", c.AdminEmail)
	require("ADMIN_PASSWORD", c.AdminPassword)
	require("RESEND_API_KEY", c.ResendAPIKey)
	require("S3_ACCESS_KEY_ID", c.S3AccessKeyID)
	require("S3_SECRET_ACCESS_KEY", c.S3SecretAccessKey)
	if c.IsProduction() {
		require("SESSION_SECRET", c.SessionSecret)
	}

	if c.AdminEmail != "" {
		if _, err := mail.ParseAddress(c.AdminEmail); err != nil {
			errs = append(errs, fmt.Errorf("ADMIN_EMAIL is not a valid email"))
		}
	}

	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		errs = append(errs, fmt.Errorf("APP_ENV must be one of development, production, test"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %w", errors.Join(errs...))
	}
	return nil
}

func env(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
