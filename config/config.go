package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Storage configuration. Backend selects the key-value engine used for
	// on-device persistence: "memory", "file", "redis" or "mongo".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	StorageDir     string `mapstructure:"STORAGE_DIR"`
	StorageTimeout int    `mapstructure:"STORAGE_TIMEOUT_MS"`

	// Redis configuration (used when STORAGE_BACKEND=redis).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Mongo configuration (used when STORAGE_BACKEND=mongo).
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Session configuration.
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
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
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("STORAGE_DIR", ".gobeauty")
	viper.SetDefault("STORAGE_TIMEOUT_MS", 5000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_EMAIL", "admin@gobeauty.com")
	// Demo admin credentials; the session service bcrypt-hashes this on startup.
	viper.SetDefault("ADMIN_PASSWORD", "admin123")

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
