package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	KmRate          decimal.Decimal
	AuthUser        string
	AuthPassword    string
	ShutdownTimeout time.Duration
}

var defaults = map[string]any{
	"HTTP_PORT":        "8080",
	"DB_HOST":          "localhost",
	"DB_PORT":          "5432",
	"DB_USER":          "",
	"DB_PASSWORD":      "",
	"DB_NAME":          "meatmanager",
	"DB_SSLMODE":       "disable",
	"KM_RATE":          "0.30",
	"AUTH_USER":        "",
	"AUTH_PASSWORD":    "",
	"SHUTDOWN_TIMEOUT": "10s",
}

// LoadConfig reads envFile if it exists, then the environment. Unset keys
// fall back to their defaults.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	kmRate, err := kernel.ParseDecimal(v.GetString("KM_RATE"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("KM_RATE", err)
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("SHUTDOWN_TIMEOUT", err)
	}

	return Config{
		HTTPPort:        v.GetString("HTTP_PORT"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPassword:      v.GetString("DB_PASSWORD"),
		DBName:          v.GetString("DB_NAME"),
		DBSslMode:       v.GetString("DB_SSLMODE"),
		KmRate:          kmRate,
		AuthUser:        v.GetString("AUTH_USER"),
		AuthPassword:    v.GetString("AUTH_PASSWORD"),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// DSN is the PostgreSQL connection string for the gorm driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
