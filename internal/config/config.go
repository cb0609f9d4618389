package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from an optional
// config.yaml and from environment variables (SERVER_ADDRESS, DB_PATH,
// JWT_SECRET, JWT_TTL, COOKIE_SECURE).
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type CookieConfig struct {
	Secure bool `mapstructure:"secure"`
}

// Load reads configuration from path/config.yaml when present, with
// environment variables taking precedence. Missing files are fine; defaults
// cover local development.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.path", filepath.Join("data", "liftlog.db"))
	viper.SetDefault("jwt.secret", "change_me_in_production")
	viper.SetDefault("jwt.ttl", 7*24*time.Hour)
	viper.SetDefault("cookie.secure", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, err
		}
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
