package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Rate limiting
	RateLimitPerMinute int
}

// LoadConfig reads configuration from config.yml when present, falling back
// to environment variables (SERVER_PORT, DB_HOST, ...) for every key.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: environment variables only.
	}

	cfg := &Config{
		ServerPort:         v.GetString("server.port"),
		ServerHost:         v.GetString("server.host"),
		DBHost:             v.GetString("db.host"),
		DBPort:             v.GetString("db.port"),
		DBUser:             v.GetString("db.user"),
		DBPassword:         v.GetString("db.password"),
		DBName:             v.GetString("db.name"),
		DBSSLMode:          v.GetString("db.ssl_mode"),
		RedisHost:          v.GetString("redis.host"),
		RedisPort:          v.GetString("redis.port"),
		RedisPassword:      v.GetString("redis.password"),
		RedisDB:            v.GetInt("redis.db"),
		JWTSecret:          v.GetString("jwt.secret"),
		RateLimitPerMinute: v.GetInt("rate_limit.per_minute"),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rate_limit.per_minute", 120)
}
