package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	SeedFile        string
	AdminToken      string
	ShutdownTimeout time.Duration
}

// DefaultShutdownTimeout bounds graceful shutdown when FORMTYPES_SHUTDOWN_TIMEOUT is unset or invalid.
const DefaultShutdownTimeout = 10 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) Server {
	addr := getenv("FORMTYPES_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	level := getenv("FORMTYPES_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	timeout := DefaultShutdownTimeout
	if raw := getenv("FORMTYPES_SHUTDOWN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Server{
		Addr:            addr,
		LogLevel:        level,
		SeedFile:        getenv("FORMTYPES_SEED_FILE"),
		AdminToken:      getenv("FORMTYPES_ADMIN_TOKEN"),
		ShutdownTimeout: timeout,
	}
}
