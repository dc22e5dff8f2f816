package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration values.
type Config struct {
	AppPort               string
	SessionSecret         string
	SessionTTL            time.Duration
	FreeShippingThreshold decimal.Decimal
	FlatShippingRate      decimal.Decimal
	TaxRate               decimal.Decimal
	CheckoutDelay         time.Duration
	ContactDelay          time.Duration
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:               getEnv("APP_PORT", "8080"),
		SessionSecret:         getEnv("SESSION_SECRET", "2c61cfb0f4f5f6f0b1a7d2e8c9b34d1a8f2e7c6b5a4d3c2b1a0f9e8d7c6b5a4d"),
		SessionTTL:            getEnvDuration("SESSION_TTL_HOURS", 24) * time.Hour,
		FreeShippingThreshold: getEnvDecimal("FREE_SHIPPING_THRESHOLD", "100"),
		FlatShippingRate:      getEnvDecimal("FLAT_SHIPPING_RATE", "15"),
		TaxRate:               getEnvDecimal("TAX_RATE", "0.08"),
		CheckoutDelay:         getEnvMillis("CHECKOUT_DELAY_MS", 2000),
		ContactDelay:          getEnvMillis("CONTACT_DELAY_MS", 2000),
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}

func getEnvMillis(key string, fallback int) time.Duration {
	return getEnvDuration(key, fallback) * time.Millisecond
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := decimal.NewFromString(value); err == nil {
			return parsed
		}
		log.Printf("[Config] Ignoring invalid decimal for %s: %q", key, value)
	}
	return decimal.RequireFromString(fallback)
}
