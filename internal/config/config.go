package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration, read once at startup and
// passed by reference to the components that need it.
type Config struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	DB   DB   `mapstructure:"db"`
	Auth Auth `mapstructure:"auth"`
	SMTP SMTP `mapstructure:"smtp"`
	CORS CORS `mapstructure:"cors"`
}

// DB configures the SQLite store.
type DB struct {
	Path string `mapstructure:"path"`
}

// Auth configures token signing and lifetimes.
type Auth struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"` // access tokens
	ResetTTL   time.Duration `mapstructure:"reset_ttl"` // password-reset tokens
}

// SMTP configures the password-reset mailer.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// CORS configures allowed origins for browser clients.
type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const (
	defaultPort     = "8080"
	defaultTokenTTL = 24 * time.Hour
	defaultResetTTL = time.Hour
	defaultDBPath   = "app.db"
)

// Load reads configs/config.yml and resolves environment overrides
// (CINELOG_AUTH_SIGNING_KEY etc.) into a Config.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")
	v.SetEnvPrefix("cinelog")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.applyDefaults()

	if cfg.Auth.SigningKey == "" {
		return nil, fmt.Errorf("auth.signing_key must be set")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = defaultPort
	}
	if c.DB.Path == "" {
		c.DB.Path = defaultDBPath
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.Auth.ResetTTL <= 0 {
		c.Auth.ResetTTL = defaultResetTTL
	}
}
