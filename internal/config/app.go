package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port                   string `mapstructure:"port"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

type Backend struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Catalog struct {
	RefreshSeconds int `mapstructure:"refresh_seconds"`
}

type Content struct {
	RefreshSeconds int    `mapstructure:"refresh_seconds"`
	NewsFeedURL    string `mapstructure:"news_feed_url"`
}

type Session struct {
	TokenFile string `mapstructure:"token_file"`
}

type OrderCache struct {
	MaxItems   int64 `mapstructure:"max_items"`
	TTLSeconds int   `mapstructure:"ttl_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Backend    Backend    `mapstructure:"backend"`
	Catalog    Catalog    `mapstructure:"catalog"`
	Content    Content    `mapstructure:"content"`
	Session    Session    `mapstructure:"session"`
	OrderCache OrderCache `mapstructure:"order_cache"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is a local development convenience, absence is fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_server.shutdown_timeout_seconds", 10)
	viper.SetDefault("backend.timeout_seconds", 10)
	viper.SetDefault("catalog.refresh_seconds", 30)
	viper.SetDefault("content.refresh_seconds", 300)
	viper.SetDefault("session.token_file", ".aevonx_token")
	viper.SetDefault("order_cache.max_items", 1000)
	viper.SetDefault("order_cache.ttl_seconds", 15)
	viper.SetDefault("logging.level", "info")

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")
	_ = viper.BindEnv("http_server.shutdown_timeout_seconds", "HTTP_SHUTDOWN_TIMEOUT_SECONDS")

	// backend env vars
	_ = viper.BindEnv("backend.base_url", "BACKEND_BASE_URL")
	_ = viper.BindEnv("backend.timeout_seconds", "BACKEND_TIMEOUT_SECONDS")

	// refresh env vars
	_ = viper.BindEnv("catalog.refresh_seconds", "CATALOG_REFRESH_SECONDS")
	_ = viper.BindEnv("content.refresh_seconds", "CONTENT_REFRESH_SECONDS")
	_ = viper.BindEnv("content.news_feed_url", "NEWS_FEED_URL")

	// session env vars
	_ = viper.BindEnv("session.token_file", "SESSION_TOKEN_FILE")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required")
	}

	return &cfg, nil
}
