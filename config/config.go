package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"6001"`
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	MongoURI       string        `env:"MONGODB_URI,required,notEmpty"`
	MongoDatabase  string        `env:"MONGODB_DATABASE" envDefault:"shoppers_prime"`
	MongoTimeout   time.Duration `env:"MONGODB_TIMEOUT" envDefault:"10s"`
	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL         time.Duration `env:"JWT_TTL" envDefault:"720h"`
	UploadDir      string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	PaypalClientID string        `env:"PAYPAL_CLIENT_ID"`
}

// IsProduction reports whether the service runs with production settings
// (JSON logs, secure cookies).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// LoadEnv applies .env on top of the process environment. A missing file is
// normal outside local development.
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("load .env file")
	}
}

// Load reads .env (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	LoadEnv()
	return Parse()
}

// Parse parses the current environment into a Config without touching .env.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
