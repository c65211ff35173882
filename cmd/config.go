package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration

	CORSAllowOrigins []string
	CookieSecure     bool

	KafkaHost             string
	KafkaOrderPlacedTopic string

	SessionCleanupSchedule string
	LogLevel               string
}

var configDefaults = map[string]any{
	"HTTP_PORT":                "8080",
	"DB_DRIVER":                "postgres",
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "5432",
	"DB_USER":                  "",
	"DB_PASSWORD":              "",
	"DB_NAME":                  "swiftdrop",
	"DB_SSLMODE":               "disable",
	"SQLITE_PATH":              "swiftdrop.db",
	"JWT_SECRET":               "",
	"JWT_REFRESH_SECRET":       "",
	"ACCESS_TOKEN_TTL":         "15m",
	"REFRESH_TOKEN_TTL":        "168h",
	"CORS_ALLOW_ORIGINS":       "http://localhost:3000",
	"COOKIE_SECURE":            false,
	"KAFKA_HOST":               "",
	"KAFKA_ORDER_PLACED_TOPIC": "orders.placed",
	"SESSION_CLEANUP_SCHEDULE": "0 * * * *",
	"LOG_LEVEL":                "info",
}

// LoadConfig reads envFile into the process environment when it exists and
// then resolves every key from the environment, falling back to defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		DBDriver:               strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		SQLitePath:             v.GetString("SQLITE_PATH"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTRefreshSecret:       v.GetString("JWT_REFRESH_SECRET"),
		AccessTokenTTL:         v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:        v.GetDuration("REFRESH_TOKEN_TTL"),
		CORSAllowOrigins:       splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		CookieSecure:           v.GetBool("COOKIE_SECURE"),
		KafkaHost:              v.GetString("KAFKA_HOST"),
		KafkaOrderPlacedTopic:  v.GetString("KAFKA_ORDER_PLACED_TOPIC"),
		SessionCleanupSchedule: v.GetString("SESSION_CLEANUP_SCHEDULE"),
		LogLevel:               v.GetString("LOG_LEVEL"),
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the process cannot start without.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.JWTSecret == "" || c.JWTRefreshSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET and JWT_REFRESH_SECRET are required"))
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver))
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		problems = append(problems, errors.New("ACCESS_TOKEN_TTL and REFRESH_TOKEN_TTL must be positive durations"))
	}
	return errors.Join(problems...)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
