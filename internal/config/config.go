// Package config loads application configuration from the environment.
// A .env file is read first (if present) and viper resolves every key
// against the process environment with the defaults below.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Spoonacular SpoonacularConfig
	Mail        MailConfig
	RateLimit   RateLimitConfig
	Features    FeatureFlags
}

type AppConfig struct {
	Environment       string
	LogLevel          string
	LogFormat         string
	PublicWebsiteURL  string
	PrivateWebsiteURL string
	// APIURL is this service's external address, used in emailed links.
	APIURL            string
}

// Dev reports whether the service runs in development mode.
func (a AppConfig) Dev() bool {
	return a.Environment == "" || a.Environment == "development"
}

// WebsiteURL is the URL users are sent back to after email confirmation.
func (a AppConfig) WebsiteURL() string {
	if a.Dev() {
		return a.PublicWebsiteURL
	}
	return a.PrivateWebsiteURL
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=recipefinder TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
}

type RedisConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret          string
	SessionTTL         time.Duration
	CookieName         string
	CookieSecure       bool
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
}

type SpoonacularConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// FeatureFlags toggle behaviour that is disabled by default.
type FeatureFlags struct {
	// EquipmentEnrichment fetches the equipment widget for each recipe.
	// When off no equipment request is issued at all.
	EquipmentEnrichment bool
	// PerUserBookmarks marks a recipe as bookmarked only when the current
	// user has a favourite for it. When off every aggregated recipe is
	// reported as bookmarked.
	PerUserBookmarks bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("PUBLIC_WEBSITE_URL", "http://localhost:5173")
	v.SetDefault("PRIVATE_WEBSITE_URL", "")
	v.SetDefault("API_URL", "http://localhost:8080")

	v.SetDefault("PORT", "8080")
	v.SetDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "recipefinder")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")

	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("SESSION_TTL", 7*24*time.Hour)
	v.SetDefault("SESSION_COOKIE_NAME", "session")
	v.SetDefault("SESSION_COOKIE_SECURE", false)
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("OAUTH_REDIRECT_URL", "http://localhost:8080/auth/callback")

	v.SetDefault("SPOONACULAR_BASE_URL", "https://api.spoonacular.com")
	v.SetDefault("PRIVATE_SPOONACULAR_KEY", "")
	v.SetDefault("SPOONACULAR_TIMEOUT", 15*time.Second)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", "587")
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_SENDER", "")

	v.SetDefault("RATE_LIMIT_RPS", 5.0)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.SetDefault("FEATURE_EQUIPMENT_ENRICHMENT", false)
	v.SetDefault("FEATURE_PER_USER_BOOKMARKS", false)
}

// Load reads envFiles (missing files are ignored) and the process
// environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		// godotenv never overrides variables that are already set.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Environment:       v.GetString("ENV"),
			LogLevel:          v.GetString("LOG_LEVEL"),
			LogFormat:         v.GetString("LOG_FORMAT"),
			PublicWebsiteURL:  v.GetString("PUBLIC_WEBSITE_URL"),
			PrivateWebsiteURL: v.GetString("PRIVATE_WEBSITE_URL"),
			APIURL:            strings.TrimRight(v.GetString("API_URL"), "/"),
		},
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     v.GetDuration("SERVER_IDLE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:          v.GetString("JWT_SECRET_KEY"),
			SessionTTL:         v.GetDuration("SESSION_TTL"),
			CookieName:         v.GetString("SESSION_COOKIE_NAME"),
			CookieSecure:       v.GetBool("SESSION_COOKIE_SECURE"),
			GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			OAuthRedirectURL:   v.GetString("OAUTH_REDIRECT_URL"),
		},
		Spoonacular: SpoonacularConfig{
			BaseURL: strings.TrimRight(v.GetString("SPOONACULAR_BASE_URL"), "/"),
			APIKey:  v.GetString("PRIVATE_SPOONACULAR_KEY"),
			Timeout: v.GetDuration("SPOONACULAR_TIMEOUT"),
		},
		Mail: MailConfig{
			SMTPHost: v.GetString("SMTP_HOST"),
			SMTPPort: v.GetString("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			Sender:   v.GetString("SMTP_SENDER"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		Features: FeatureFlags{
			EquipmentEnrichment: v.GetBool("FEATURE_EQUIPMENT_ENRICHMENT"),
			PerUserBookmarks:    v.GetBool("FEATURE_PER_USER_BOOKMARKS"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Spoonacular.APIKey == "" {
		return fmt.Errorf("PRIVATE_SPOONACULAR_KEY is required")
	}
	if !c.App.Dev() && c.App.PrivateWebsiteURL == "" {
		return fmt.Errorf("PRIVATE_WEBSITE_URL is required outside development")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
