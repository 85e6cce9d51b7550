package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Env holds all runtime configuration. Values come from the environment,
// with defaults matching the local development setup.
type Env struct {
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`
	GinMode string `envconfig:"GIN_MODE"`

	DBUser string `envconfig:"DB_USER" default:"root"`
	DBPass string `envconfig:"DB_PASS"`
	DBHost string `envconfig:"DB_HOST" default:"127.0.0.1:3306"`
	DBName string `envconfig:"DB_NAME" default:"smart_hotel"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"super-secret-key-change-me"`

	// SettlementDelay stands in for payment-gateway latency.
	SettlementDelay   time.Duration `envconfig:"SETTLEMENT_DELAY" default:"5s"`
	SettlementTimeout time.Duration `envconfig:"SETTLEMENT_TIMEOUT" default:"30s"`

	// MQURL is optional; when empty the notifier logs instead of publishing.
	MQURL      string `envconfig:"MQ_URL"`
	MQExchange string `envconfig:"MQ_EXCHANGE" default:"hotel.events"`

	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func LoadEnv() Env {
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		log.Fatalf("failed to load environment config: %v", err)
	}
	return env
}
