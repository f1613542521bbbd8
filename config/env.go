package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit string
}

type ServerConfig struct {
	Host  string
	Port  string
	Debug bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type AuthConfig struct {
	CookieName      string
	SessionDuration int
	CookieSecure    bool
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("ENV", "development")
	sessionDuration, _ := strconv.Atoi(getEnv("SESSION_DURATION", "3600"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	debug, _ := strconv.ParseBool(getEnv("DEBUG_MODE", "false"))
	cookieSecure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	return Config{
		Env: env,
		Server: ServerConfig{
			Host:  getEnv("PHARMACY_API_HOST", "0.0.0.0"),
			Port:  getEnv("PHARMACY_API_PORT", "5000"),
			Debug: debug,
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pharmacy"),
			URL:      databaseURL(env),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			CookieName:      os.Getenv("SESSION_NAME"),
			SessionDuration: sessionDuration,
			CookieSecure:    cookieSecure,
		},
		RateLimit: os.Getenv("RATE_LIMIT"),
	}
}

// DSN returns the connection string for the configured environment. A full
// URL (DATABASE_URL, or TEST_DATABASE_URL when ENV=test) takes precedence
// over the individual DB_* parts.
func (c Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name,
	)
}

func databaseURL(env string) string {
	if env == "test" {
		return os.Getenv("TEST_DATABASE_URL")
	}
	return os.Getenv("DATABASE_URL")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
