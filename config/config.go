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
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int           `mapstructure:"REDIS_SESSION_DB"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"`
	SubmitLockTTL  time.Duration `mapstructure:"SUBMIT_LOCK_TTL"`

	// Hosted data API serving the reference collections.
	DataAPIURL         string        `mapstructure:"DATA_API_URL"`
	DataAPIAnonKey     string        `mapstructure:"DATA_API_ANON_KEY"`
	DataAPIRequireAuth bool          `mapstructure:"DATA_API_REQUIRE_AUTH"`
	DataAPITimeout     time.Duration `mapstructure:"DATA_API_TIMEOUT"`

	// Messaging deep link.
	WhatsAppHost   string `mapstructure:"WHATSAPP_HOST"`
	WhatsAppNumber string `mapstructure:"WHATSAPP_NUMBER"`

	// Equipment image host.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SUBMIT_LOCK_TTL", "30s")
	viper.SetDefault("DATA_API_URL", "")
	viper.SetDefault("DATA_API_ANON_KEY", "")
	viper.SetDefault("DATA_API_REQUIRE_AUTH", false)
	viper.SetDefault("DATA_API_TIMEOUT", "10s")
	viper.SetDefault("WHATSAPP_HOST", "wa.me")
	viper.SetDefault("WHATSAPP_NUMBER", "")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
