package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Addr          string        `envconfig:"ADDR" default:":8080"`
	GinMode       string        `envconfig:"GIN_MODE" default:"release"`
	MongoURI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DATABASE" default:"fleet_backoffice"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"default-secret-key-change-in-production"`
	JWTExpiry     time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
	CORSOrigins   []string      `envconfig:"CORS_ORIGINS" default:"*"`
	LogJSON       bool          `envconfig:"LOG_JSON" default:"false"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and populates the configuration from
// the environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process config: %w", err)
	}
	return &cfg, nil
}
