package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultTimezone  = "Asia/Ho_Chi_Minh"
	defaultCron      = "0 18 * * *"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Timezone is the business timezone. Civil dates and the reconciler
	// schedule are evaluated in it, never in the server zone.
	Timezone        string
	Location        *time.Location
	AbsenceCron     string
	EnableScheduler bool
	MigrationsPath  string

	RedisURL           string
	LoginRateLimit     string
	CORSAllowedOrigins []string

	BootstrapAdminPhone    string
	BootstrapAdminPassword string
	BootstrapAdminName     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "attendance-backend")
	viper.SetDefault("APP_TIMEZONE", defaultTimezone)
	viper.SetDefault("ABSENCE_CRON", defaultCron)
	viper.SetDefault("ENABLE_SCHEDULER", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("BOOTSTRAP_ADMIN_PHONE", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_NAME", "Admin")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.Timezone = viper.GetString("APP_TIMEZONE")
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	cfg.AbsenceCron = viper.GetString("ABSENCE_CRON")
	if _, err := cron.ParseStandard(cfg.AbsenceCron); err != nil {
		return nil, fmt.Errorf("invalid ABSENCE_CRON %q: %w", cfg.AbsenceCron, err)
	}
	cfg.EnableScheduler = viper.GetBool("ENABLE_SCHEDULER")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.BootstrapAdminPhone = viper.GetString("BOOTSTRAP_ADMIN_PHONE")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	cfg.BootstrapAdminName = viper.GetString("BOOTSTRAP_ADMIN_NAME")
	if (cfg.BootstrapAdminPhone == "") != (cfg.BootstrapAdminPassword == "") {
		log.Println("Warning: BOOTSTRAP_ADMIN_PHONE and BOOTSTRAP_ADMIN_PASSWORD must both be set; bootstrap admin disabled.")
		cfg.BootstrapAdminPhone, cfg.BootstrapAdminPassword = "", ""
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
