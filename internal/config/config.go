package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	AppPort      string        // HTTP listen port
	DBUser       string        // Database user
	DBPassword   string        // Database password
	DBHost       string        // Database host
	DBPort       string        // Database port
	DBName       string        // Database name
	RedisAddr    string        // Redis server address, empty disables caching
	RedisPass    string        // Redis password
	RedisDB      int           // Redis database number
	CacheTTL     time.Duration // TTL for cached list responses
	JWTSecret    string        // JWT signing secret
	AuthRequired bool          // Require a Bearer token on mutating routes
	IsProd       bool          // Is production environment
}

// LoadConfig loads configuration from the environment, reading .env if present
func LoadConfig() *Config {
	_ = godotenv.Load()
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	cacheTTL := 60 * time.Second
	if v, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS")); err == nil && v > 0 {
		cacheTTL = time.Duration(v) * time.Second
	}
	return &Config{
		AppPort:      envOr("APP_PORT", "8080"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBHost:       envOr("DB_HOST", "127.0.0.1"),
		DBPort:       envOr("DB_PORT", "3306"),
		DBName:       os.Getenv("DB_NAME"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		CacheTTL:     cacheTTL,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AuthRequired: os.Getenv("AUTH_REQUIRED") == "true",
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
