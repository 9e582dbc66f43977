package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "GRAVITYFIT_"

type Config struct {
	Server    ServerConfig    `yaml:"server" envPrefix:"SERVER_"`
	Database  DatabaseConfig  `yaml:"database" envPrefix:"DB_"`
	Tailscale TailscaleConfig `yaml:"tailscale" envPrefix:"TAILSCALE_"`
	Cache     CacheConfig     `yaml:"cache" envPrefix:"CACHE_"`
	Catalog   CatalogConfig   `yaml:"catalog" envPrefix:"CATALOG_"`
}

type ServerConfig struct {
	Host       string `yaml:"host" env:"HOST"`
	Port       int    `yaml:"port" env:"PORT"`
	CORSOrigin string `yaml:"cors_origin" env:"CORS_ORIGIN"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	Name     string `yaml:"name" env:"NAME"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Hostname string `yaml:"hostname" env:"HOSTNAME"`
	StateDir string `yaml:"state_dir" env:"STATE_DIR"`
}

type CacheConfig struct {
	StatsTTL time.Duration `yaml:"stats_ttl" env:"STATS_TTL"`
	SizeMB   int           `yaml:"size_mb" env:"SIZE_MB"`
}

// CatalogConfig selects where exoplanet data comes from. StaticOnly serves
// the embedded snapshot without a database; StaticFallback serves it when
// the database fails.
type CatalogConfig struct {
	StaticOnly     bool   `yaml:"static_only" env:"STATIC_ONLY"`
	StaticFallback bool   `yaml:"static_fallback" env:"STATIC_FALLBACK"`
	ImportStateDir string `yaml:"import_state_dir" env:"IMPORT_STATE_DIR"`
}

// Default returns the configuration used for keys absent from the file.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "0.0.0.0", Port: 8080, CORSOrigin: "*"},
		Database:  DatabaseConfig{Port: 5432, SSLMode: "disable"},
		Tailscale: TailscaleConfig{Hostname: "gravityfit", StateDir: "tsnet-state"},
		Cache:     CacheConfig{StatsTTL: 5 * time.Minute, SizeMB: 8},
		Catalog:   CatalogConfig{StaticFallback: true, ImportStateDir: ".gravityfit"},
	}
}

// DSN returns a PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(sslmode),
	}
	return u.String()
}

// Load reads config from a YAML file, then applies environment variable overrides.
// An empty path skips the file. Env vars use the prefix GRAVITYFIT_ and
// underscore-separated paths:
//
//	GRAVITYFIT_SERVER_HOST, GRAVITYFIT_SERVER_PORT, GRAVITYFIT_SERVER_CORS_ORIGIN,
//	GRAVITYFIT_DB_HOST, GRAVITYFIT_DB_PORT, GRAVITYFIT_DB_NAME,
//	GRAVITYFIT_DB_USER, GRAVITYFIT_DB_PASSWORD, GRAVITYFIT_DB_SSLMODE,
//	GRAVITYFIT_TAILSCALE_ENABLED, GRAVITYFIT_CACHE_STATS_TTL,
//	GRAVITYFIT_CATALOG_STATIC_ONLY, GRAVITYFIT_CATALOG_STATIC_FALLBACK
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Server.CORSOrigin == "" {
		return errors.New("server.cors_origin is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return errors.New("tailscale.hostname is required when tailscale is enabled")
	}
	if c.Cache.StatsTTL < 0 {
		return errors.New("cache.stats_ttl must not be negative")
	}
	if c.Cache.StatsTTL > 0 && c.Cache.SizeMB <= 0 {
		return errors.New("cache.size_mb is required when caching is enabled")
	}
	if c.Catalog.StaticOnly {
		return nil
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.Port == 0 {
		return errors.New("database.port is required")
	}
	if c.Database.Name == "" {
		return errors.New("database.name is required")
	}
	if c.Database.User == "" {
		return errors.New("database.user is required")
	}
	return nil
}
