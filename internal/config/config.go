package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Uploads UploadsConfig `mapstructure:"uploads"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Env  string `mapstructure:"env"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type UploadsConfig struct {
	ImageDir        string `mapstructure:"image_dir"`
	DownloadDir     string `mapstructure:"download_dir"`
	MaxImageBytes   int64  `mapstructure:"max_image_bytes"`
	MaxArchiveBytes int64  `mapstructure:"max_archive_bytes"`
}

type LogConfig struct {
	ClientErrorFile string `mapstructure:"client_error_file"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.storefront/")
	v.AddConfigPath("/etc/storefront/")

	// Enable environment variable override with STOREFRONT_ prefix
	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.env", "dev")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("auth.token_ttl", 2*time.Hour)
	v.SetDefault("uploads.image_dir", "public/uploads")
	v.SetDefault("uploads.download_dir", "public/downloads")
	v.SetDefault("uploads.max_image_bytes", 5<<20)
	v.SetDefault("uploads.max_archive_bytes", 200<<20)
	v.SetDefault("log.client_error_file", "data/client-errors.log")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret must be set")
	}

	return &config, nil
}
