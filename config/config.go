package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB   int    `mapstructure:"REDIS_STORE_DB"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Booking draft session lifetime.
	DraftTTLMinutes int `mapstructure:"DRAFT_TTL_MINUTES"`

	// Simulated collaborator delays.
	AuthDelayMS    int `mapstructure:"AUTH_DELAY_MS"`
	PaymentDelayMS int `mapstructure:"PAYMENT_DELAY_MS"`

	// Payment processing: "simulated" or "stripe".
	PaymentProvider string `mapstructure:"PAYMENT_PROVIDER"`
	StripeKey       string `mapstructure:"STRIPE_KEY"`

	// Location detection.
	DefaultCity          string `mapstructure:"DEFAULT_CITY"`
	GeocodeTimeoutSecond int    `mapstructure:"GEOCODE_TIMEOUT_SECONDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("DRAFT_TTL_MINUTES", 30)
	viper.SetDefault("AUTH_DELAY_MS", 1000)
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("PAYMENT_PROVIDER", "simulated")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("DEFAULT_CITY", "Mumbai")
	viper.SetDefault("GEOCODE_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// DraftTTL returns the booking draft lifetime as a duration.
func DraftTTL() time.Duration {
	return time.Duration(AppConfig.DraftTTLMinutes) * time.Minute
}
