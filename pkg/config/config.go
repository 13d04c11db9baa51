package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Import   ImportConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey   string
	ExpiryHours int
}

type ImportConfig struct {
	// DefaultCategoryID is the migration-seeded "uncategorized" category that
	// absorbs imported rows without a mapped category.
	DefaultCategoryID uint
	// DefaultCustomerPassword is the fixed value a customer password is reset to.
	DefaultCustomerPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	expiryHours, err := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))
	if err != nil {
		return nil, errors.New("invalid jwt expiry hours")
	}

	defaultCategoryID, err := strconv.ParseUint(getEnv("IMPORT_DEFAULT_CATEGORY_ID", "1"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid import default category id")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "WareFlow API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "wareflow"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:   getEnv("JWT_SECRET", ""),
			ExpiryHours: expiryHours,
		},
		Import: ImportConfig{
			DefaultCategoryID:       uint(defaultCategoryID),
			DefaultCustomerPassword: getEnv("DEFAULT_CUSTOMER_PASSWORD", "123456"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
