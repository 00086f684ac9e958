package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

const envPrefix = "BLOGLIST_"

// Supported database.type values.
const (
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Seed     SeedConfig     `koanf:"seed"`
}

type ServerConfig struct {
	Port          int      `koanf:"port"`
	Host          string   `koanf:"host"`
	MaxBodySizeMB int      `koanf:"max_body_size_mb"`
	Mode          string   `koanf:"mode"`         // debug | release
	CORSOrigins   []string `koanf:"cors_origins"` // empty disables CORS
}

type DatabaseConfig struct {
	Type         string `koanf:"type"` // postgres | memory
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type AuthConfig struct {
	Secret     string        `koanf:"secret"`
	TokenTTL   time.Duration `koanf:"token_ttl"` // 0 issues tokens without expiry
	BcryptCost int           `koanf:"bcrypt_cost"`
}

type SeedConfig struct {
	Path string `koanf:"path"` // optional YAML fixtures loaded at startup
}

// Addr returns the host:port the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case DatabasePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case DatabaseMemory:
	default:
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if strings.TrimSpace(c.Auth.Secret) == "" {
		return fmt.Errorf("auth.secret is required")
	}
	if c.Auth.TokenTTL < 0 {
		return fmt.Errorf("auth.token_ttl must be >= 0")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid auth.bcrypt_cost %d (must be %d-%d)", c.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

// Load parses config from defaults, then file, then BLOGLIST_* env vars, and validates it.
// Nested keys use a double underscore: BLOGLIST_AUTH__SECRET sets auth.secret.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             3003,
		"server.host":             "0.0.0.0",
		"server.max_body_size_mb": 1,
		"server.mode":             "release",
		"server.cors_origins":     []string{},
		"database.type":           DatabasePostgres,
		"database.dsn":            "",
		"database.max_open_conns": 25,
		"database.max_idle_conns": 25,
		"database.auto_migrate":   true,
		"auth.secret":             "",
		"auth.token_ttl":          "1h",
		"auth.bcrypt_cost":        bcrypt.DefaultCost,
		"seed.path":               "",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envValue maps BLOGLIST_SERVER__CORS_ORIGINS=a,b to server.cors_origins=[a b].
func envValue(key, value string) (string, interface{}) {
	key = strings.Replace(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".", -1)
	if key == "server.cors_origins" {
		origins := []string{}
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		return key, origins
	}
	return key, value
}
