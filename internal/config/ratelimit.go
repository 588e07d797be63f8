package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig controls the fixed-window limiter applied to the public
// inquiry endpoint. The limiter exists to keep the unauthenticated contact
// form from being used as a spam cannon; authenticated admin routes are not
// limited.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // max requests per window and client IP
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig with sane defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_MAX", 5),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl:inquiry"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	// The limiter buckets by whole seconds; sub-second windows are rounded
	// up rather than rejected.
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	} else if cfg.Window < time.Second {
		cfg.Window = time.Second
	}
	return cfg
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
