package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr            string
	PostgresDSN         string // empty = in-memory stores
	RedisAddr           string
	KafkaBrokers        []string
	ServiceName         string
	Environment         string
	FrontendURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
}

func Load() Config {
	return Config{
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		PostgresDSN:         getenv("POSTGRES_DSN", ""),
		RedisAddr:           getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:        splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),
		ServiceName:         getenv("SERVICE_NAME", "storefront-api"),
		Environment:         getenv("ENVIRONMENT", "development"),
		FrontendURL:         getenv("FRONTEND_URL", "http://localhost:5173"),
		StripeSecretKey:     getenv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getenv("STRIPE_WEBHOOK_SECRET", ""),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
