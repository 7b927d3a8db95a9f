package session

import (
	"os"
	"strings"
)

const (
	defaultLogMode          = "production"
	defaultMetricsNamespace = "shopcart"
)

// Config is read from the environment once at startup.
type Config struct {
	// LogMode selects the zap preset: "production" (JSON) or "development" (console).
	LogMode          string
	MetricsNamespace string
}

func LoadConfig() Config {
	return Config{
		LogMode:          getEnv("CART_LOG_MODE", defaultLogMode),
		MetricsNamespace: getEnv("CART_METRICS_NAMESPACE", defaultMetricsNamespace),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
