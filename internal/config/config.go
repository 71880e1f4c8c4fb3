// Package config provides runtime configuration values for the catalog server.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds listener addresses, limits and startup seeding knobs.
type Config struct {
	GRPCAddr        string
	HTTPAddr        string
	ShutdownTimeout time.Duration
	LogLevel        string
	GRPCReflection  bool

	WatchBuffer        int
	MaxConcurrentCalls int
	MutationRate       float64
	MutationBurst      int
	TrustProxy         bool

	MetricsEnabled bool
	MetricsToken   string

	SeedDemo bool
	SeedFile string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func boolenv(key string, def bool) bool {
	v := strings.TrimSpace(getenv(key, ""))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// LoadEnvFile reads KEY=VALUE pairs from path into the environment. Variables
// that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load collects configuration from .env and the environment with defaults.
func Load() Config {
	_ = LoadEnvFile(".env")

	return Config{
		GRPCAddr:           getenv("GRPC_ADDR", ":50051"),
		HTTPAddr:           getenv("HTTP_ADDR", ":8082"),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 10),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		GRPCReflection:     boolenv("GRPC_REFLECTION", true),
		WatchBuffer:        atoienv("WATCH_BUFFER", 64),
		MaxConcurrentCalls: atoienv("MAX_CONCURRENT_CALLS", 64),
		MutationRate:       floatenv("MUTATION_RATE", 0),
		MutationBurst:      atoienv("MUTATION_BURST", 40),
		TrustProxy:         boolenv("TRUST_PROXY", false),
		MetricsEnabled:     boolenv("METRICS_ENABLED", true),
		MetricsToken:       getenv("METRICS_TOKEN", ""),
		SeedDemo:           boolenv("SEED_DEMO", true),
		SeedFile:           getenv("SEED_FILE", ""),
	}
}
