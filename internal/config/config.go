package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port             string
	StaticDir        string
	LogLevel         string
	CORSAllowOrigins string
	EnablePprof      bool

	Database Database
	Auth     Auth
}

type Database struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	Username string
	Password string
	Schema   string
	// Path is the sqlite database file.
	Path string
}

// Auth guards the write routes when Secret is set.
type Auth struct {
	Secret       string
	Username     string
	PasswordHash string
	TokenTTL     time.Duration
}

func (a Auth) Enabled() bool {
	return a.Secret != ""
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first.
func Load() Config {
	return Config{
		Port:             getEnv("PORT", "3001"),
		StaticDir:        getEnv("STATIC_DIR", "dist"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		EnablePprof:      getBool("PPROF_ENABLED", false),
		Database: Database{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverMemory)),
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_DATABASE"),
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Schema:   getEnv("DB_SCHEMA", "public"),
			Path:     getEnv("DB_PATH", "notes.db"),
		},
		Auth: Auth{
			Secret:       os.Getenv("AUTH_SECRET"),
			Username:     os.Getenv("AUTH_USERNAME"),
			PasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
			TokenTTL:     getDuration("AUTH_TOKEN_TTL", 72*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
