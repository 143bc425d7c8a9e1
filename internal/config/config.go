// Package config arma la configuración del frontend.
// Orden: defaults -> archivo YAML (CONFIG_FILE) -> .env -> variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigFile      = "CONFIG_FILE"
	EnvPort            = "PORT"
	EnvBackendURL      = "BACKEND_URL"
	EnvBackendTimeout  = "BACKEND_TIMEOUT"
	EnvBreakerEnabled  = "BREAKER_ENABLED"
	EnvDBDSN           = "DB_DSN"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvAppName         = "APP_NAME"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	DefaultPort       = 3000
	DefaultBackendURL = "http://localhost:8080"
	DefaultAppName    = "sheep-breeding-web"
)

type Config struct {
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	BackendURL      string        `yaml:"backend_url" validate:"required,url"`
	BackendTimeout  time.Duration `yaml:"backend_timeout" validate:"gt=0"`
	BreakerEnabled  *bool         `yaml:"breaker_enabled"`
	DBDSN           string        `yaml:"db_dsn"`
	LogLevel        string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat       string        `yaml:"log_format" validate:"omitempty,oneof=text json"`
	AppName         string        `yaml:"app_name" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// Addr es la dirección de escucha del server HTTP.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Breaker devuelve si el circuit breaker está activo (default true).
func (c *Config) Breaker() bool {
	return c.BreakerEnabled == nil || *c.BreakerEnabled
}

// Load lee .env si existe (no pisa variables ya seteadas) y arma la config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(os.Getenv(EnvConfigFile), os.LookupEnv)
}

// LoadFrom es Load sin tocar el proceso: path YAML opcional y una función de lookup de env.
func LoadFrom(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.loadDefaults()
	if err := cfg.loadEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	if c.BackendTimeout == 0 {
		c.BackendTimeout = 10 * time.Second
	}
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 15 * time.Second
	}
}

func (c *Config) loadEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvPort); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Port = n
	}
	if v, ok := get(EnvBackendURL); ok {
		c.BackendURL = strings.TrimRight(v, "/")
	}
	if v, ok := get(EnvBackendTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBackendTimeout, err)
		}
		c.BackendTimeout = d
	}
	if v, ok := get(EnvBreakerEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBreakerEnabled, err)
		}
		c.BreakerEnabled = &b
	}
	if v, ok := get(EnvDBDSN); ok {
		c.DBDSN = v
	}
	if v, ok := get(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFormat); ok {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := get(EnvAppName); ok {
		c.AppName = v
	}
	if v, ok := get(EnvShutdownTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	return nil
}

var validate = validator.New()

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", e.Field(), e.Tag(), e.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
