package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDB       string
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "5001"),
		PgHost:     getEnv("PG_HOST", "localhost"),
		PgPort:     getEnv("PG_PORT", "5432"),
		PgUser:     getEnv("PG_USER", "postgres"),
		PgPassword: getEnv("PG_PASSWORD", "postgres"),
		PgDB:       getEnv("PG_DB", "dyne_sales"),
	}
}

// DSN builds the Postgres connection string used by both sqlx and GORM.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PgUser, c.PgPassword, c.PgHost, c.PgPort, c.PgDB)
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
