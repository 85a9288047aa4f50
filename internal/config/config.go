// Package config loads runtime configuration from a YAML file and
// environment variables using cleanenv. Environment values override the
// file; every field has a usable default so a bare `vowsync-server`
// starts without any configuration at all.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds settings for both the reference server and the CLI.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the reference backend.
type ServerConfig struct {
	Host      string `yaml:"host" env:"VOWSYNC_HOST" env-default:"0.0.0.0"`
	Port      int    `yaml:"port" env:"VOWSYNC_PORT" env-default:"8080"`
	DBPath    string `yaml:"db_path" env:"VOWSYNC_DB_PATH" env-default:"./data/vowsync.db"`
	RedisAddr string `yaml:"redis_addr" env:"VOWSYNC_REDIS_ADDR" env-default:""`
}

// ClientConfig configures the CLI's view of the world.
type ClientConfig struct {
	BaseURL  string `yaml:"base_url" env:"VOWSYNC_BASE_URL" env-default:"http://localhost:8080"`
	TokenDir string `yaml:"token_dir" env:"VOWSYNC_TOKEN_DIR" env-default:""`
}

// AuthConfig configures token issuance.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"VOWSYNC_JWT_SECRET" env-default:"dev-secret-change-me"`
	TokenTTL  int    `yaml:"token_ttl_hours" env:"VOWSYNC_TOKEN_TTL_HOURS" env-default:"72"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Addr returns the host:port the server should listen on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from the given path if it exists, then
// applies environment overrides. An empty path or a missing file is not
// an error; environment and defaults alone suffice.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			return &cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	return &cfg, nil
}
