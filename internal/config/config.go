package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
)

// DevJWTSecret es el fallback para correr local sin configuración externa.
// En producción arrancar con este valor es un error fatal.
const DevJWTSecret = "dev-insecure-secret"

// Config centraliza la configuración del servicio.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret       string `env:"JWT_SECRET" envDefault:"dev-insecure-secret"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS" envDefault:"168"`
	CookieName      string `env:"SESSION_COOKIE_NAME" envDefault:"auth-token"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CatsListTTLSeconds     int `env:"CATS_LIST_TTL" envDefault:"300"`
	CatsItemTTLSeconds     int `env:"CATS_ITEM_TTL" envDefault:"600"`
	RequestsListTTLSeconds int `env:"REQUESTS_LIST_TTL" envDefault:"60"`
	RequestsItemTTLSeconds int `env:"REQUESTS_ITEM_TTL" envDefault:"120"`

	GuardDefaultDeny   bool     `env:"GUARD_DEFAULT_DENY" envDefault:"false"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// IsProduction indica si el proceso corre con configuración de producción.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadConfig carga la configuración desde variables de entorno y la valida.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rechaza configuraciones que no deben llegar a producción.
func (c *Config) Validate() error {
	if c.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive, got %d", c.SessionTTLHours)
	}
	if !c.IsProduction() {
		return nil
	}
	if c.JWTSecret == "" || c.JWTSecret == DevJWTSecret {
		return errors.New("JWT_SECRET must be set to a non-default value in production")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required in production")
	}
	if c.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required in production")
	}
	return nil
}
