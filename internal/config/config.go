package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultFile is read when THEME_CONFIG is not set.
const DefaultFile = "theme-server.json"

// Config holds all theme server configuration values.
type Config struct {
	Listen            string   `json:"listen"`
	MetricsListen     string   `json:"metrics_listen"`
	CacheMaxAgeSec    int      `json:"cache_max_age_sec"`
	KeysFile          string   `json:"keys_file"`
	RateLimitRPM      int      `json:"rate_limit_rpm"`
	AllowedOrigin     string   `json:"allowed_origin"`
	IPAllowlist       []string `json:"ip_allowlist"`
	TrustProxyHeaders bool     `json:"trust_proxy_headers"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Load reads the JSON config file over defaults, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := &Config{
		Listen:         ":8050",
		MetricsListen:  ":9090",
		CacheMaxAgeSec: 300,
		RateLimitRPM:   120,
		AllowedOrigin:  "*",
		Env:            LoadEnv(),
	}

	path := getEnvOrDefault("THEME_CONFIG", DefaultFile)
	if file, err := os.Open(path); err == nil {
		defer file.Close()
		if err := json.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	e := c.Env
	if e == nil {
		return
	}
	if e.Listen != "" {
		c.Listen = e.Listen
	}
	if e.MetricsListen != "" {
		c.MetricsListen = e.MetricsListen
	}
	if e.KeysFile != "" {
		c.KeysFile = e.KeysFile
	}
	if e.AllowedOrigin != "" {
		c.AllowedOrigin = e.AllowedOrigin
	}
	if e.RateLimitRPM >= 0 {
		c.RateLimitRPM = e.RateLimitRPM
	}
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Listen) == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsListen != "" && c.MetricsListen == c.Listen {
		errs = append(errs, "metrics_listen must differ from listen")
	}
	if c.CacheMaxAgeSec <= 0 {
		errs = append(errs, "cache_max_age_sec must be positive")
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, "rate_limit_rpm must not be negative")
	}
	if c.KeysFile != "" {
		if _, err := os.Stat(c.KeysFile); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("keys file not found: %s", c.KeysFile))
		}
	}
	if c.AllowedOrigin == "" {
		errs = append(errs, "allowed_origin is required (use \"*\" to allow any)")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// AuthEnabled reports whether requests must carry an API key.
func (c *Config) AuthEnabled() bool {
	return c.KeysFile != ""
}
