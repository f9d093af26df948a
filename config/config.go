package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds tunables for the suite. Everything has a working default so
// the tools run with no .env at all.
type Config struct {
	TopLimit     int           // rows in the interactive process table
	LiveLimit    int           // rows in live mode
	LiveDuration time.Duration // how long live mode observes
	LiveQuantum  time.Duration // sleep between live refreshes
	PingCount    int
	PingTimeout  time.Duration
	ScanTimeout  time.Duration // per-port dial timeout
	ProbeTimeout time.Duration // TCP latency probe timeout
}

// Load reads config from .env / environment.
func Load() *Config {
	// Try .env first, fall back to plain environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		TopLimit:     getInt("TOP_LIMIT", 20),
		LiveLimit:    getInt("LIVE_LIMIT", 10),
		LiveDuration: time.Duration(getInt("LIVE_DURATION_SECONDS", 60)) * time.Second,
		LiveQuantum:  time.Duration(getInt("LIVE_QUANTUM_MS", 500)) * time.Millisecond,
		PingCount:    getInt("PING_COUNT", 4),
		PingTimeout:  time.Duration(getInt("PING_TIMEOUT_SECONDS", 30)) * time.Second,
		ScanTimeout:  time.Duration(getInt("SCAN_TIMEOUT_MS", 3000)) * time.Millisecond,
		ProbeTimeout: time.Duration(getInt("PROBE_TIMEOUT_MS", 2000)) * time.Millisecond,
	}
}

// getInt reads an int env var with fallback
func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
