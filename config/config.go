package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	BaseURL  string `mapstructure:"BASE_URL"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Three independent secrets: the session and action secrets sign the
	// two token kinds, the admin key is the login credential. They are
	// never interchangeable.
	SessionTokenSecret string `mapstructure:"SESSION_TOKEN_SECRET"`
	ActionTokenSecret  string `mapstructure:"ACTION_TOKEN_SECRET"`
	AdminKey           string `mapstructure:"ADMIN_KEY"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Outbound mail. MailerSend is used when a token is present,
	// otherwise plain SMTP, otherwise the dev logger mailer.
	MailerSendToken string `mapstructure:"MAILERSEND_TOKEN"`
	SMTPHost        string `mapstructure:"SMTP_HOST"`
	SMTPPort        int    `mapstructure:"SMTP_PORT"`
	SMTPUser        string `mapstructure:"SMTP_USER"`
	SMTPPass        string `mapstructure:"SMTP_PASS"`
	MailFrom        string `mapstructure:"MAIL_FROM"`
	AdminEmail      string `mapstructure:"ADMIN_EMAIL"`
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

	// AutomaticEnv only resolves keys viper already knows about, so the
	// env-only keys without defaults must be bound explicitly or Unmarshal
	// never sees them.
	for _, key := range []string{
		"SESSION_TOKEN_SECRET", "ACTION_TOKEN_SECRET", "ADMIN_KEY",
		"MAILERSEND_TOKEN", "SMTP_HOST", "SMTP_USER", "SMTP_PASS", "ADMIN_EMAIL",
	} {
		if err := viper.BindEnv(key); err != nil {
			log.Fatalf("Failed to bind env var %s: %v", key, err)
		}
	}

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "fobworks")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM", "bookings@fobworks.io")

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
