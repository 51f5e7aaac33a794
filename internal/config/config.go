package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs from the environment.
type Config struct {
	AppEnv           string
	AppPort          string
	AWSRegion        string
	OrdersTable      string
	CustomerIndex    string
	UserPoolID       string
	ClientID         string
	ClientSecret     string
	TokenIssuer      string
	MetricsNamespace string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing required values are reported as a single error so
// startup fails fast with a usable message.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:           os.Getenv("APP_ENV"),
		AppPort:          getenvDefault("APP_PORT", "8080"),
		AWSRegion:        os.Getenv("AWS_REGION"),
		OrdersTable:      os.Getenv("ORDERS_TABLE"),
		CustomerIndex:    getenvDefault("ORDERS_CUSTOMER_INDEX", "customer_id-index"),
		UserPoolID:       os.Getenv("COGNITO_USER_POOL_ID"),
		ClientID:         os.Getenv("COGNITO_CLIENT_ID"),
		ClientSecret:     os.Getenv("COGNITO_CLIENT_SECRET"),
		TokenIssuer:      os.Getenv("TOKEN_ISSUER_URI"),
		MetricsNamespace: getenvDefault("METRICS_NAMESPACE", "OrderService"),
	}

	for name, val := range map[string]string{
		"ORDERS_TABLE":          cfg.OrdersTable,
		"COGNITO_USER_POOL_ID":  cfg.UserPoolID,
		"COGNITO_CLIENT_ID":     cfg.ClientID,
		"COGNITO_CLIENT_SECRET": cfg.ClientSecret,
		"TOKEN_ISSUER_URI":      cfg.TokenIssuer,
	} {
		if val == "" {
			return nil, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
