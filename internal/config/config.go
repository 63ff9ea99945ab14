package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// Feed providers
	EnrichmentBaseURL string
	JokesBaseURL      string
	NewsBaseURL       string
	FeedTimeout       time.Duration

	// Admin
	AdminEmails string

	// Logging
	LogRetention time.Duration

	// Server
	Port        string
	CORSOrigins string
}

// Load reads configuration from the environment. A local .env file is
// honored when present. Secrets (JWT_SECRET, DB_PASSWORD) have no
// fallback values; main refuses to start without them.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "creator_platform"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "720h"), 720*time.Hour),

		EnrichmentBaseURL: getEnv("FEED_ENRICHMENT_URL", "https://jsonplaceholder.typicode.com"),
		JokesBaseURL:      getEnv("FEED_JOKES_URL", "https://v2.jokeapi.dev"),
		NewsBaseURL:       getEnv("FEED_NEWS_URL", "https://saurav.tech/NewsAPI"),
		FeedTimeout:       parseDuration(getEnv("FEED_TIMEOUT", "5s"), 5*time.Second),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),

		LogRetention: parseDuration(getEnv("LOG_RETENTION", "720h"), 720*time.Hour),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
