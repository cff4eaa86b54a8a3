package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete journal service configuration
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// ServerConfig contains HTTP demo API settings
type ServerConfig struct {
	Addr        string `json:"addr" yaml:"addr"`
	SessionTTL  string `json:"session_ttl" yaml:"session_ttl"` // e.g. "30m"
	MaxSessions int    `json:"max_sessions" yaml:"max_sessions"`
}

// TTL converts the session_ttl string to time.Duration
func (s ServerConfig) TTL() (time.Duration, error) {
	if s.SessionTTL == "" {
		return 0, nil
	}
	return time.ParseDuration(s.SessionTTL)
}

// JournalConfig contains demo journal parameters
type JournalConfig struct {
	MaxTrades int  `json:"max_trades" yaml:"max_trades"`
	Seed      bool `json:"seed" yaml:"seed"`
}

// LogConfig contains logging and tracing parameters
type LogConfig struct {
	Level   string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format  string `json:"format" yaml:"format"` // text or json
	Tracing bool   `json:"tracing" yaml:"tracing"`
}

// LoadFromFile loads configuration from a file (YAML, falling back to
// JSON), applies environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the configuration at path, or the defaults plus
// environment overrides when path is empty. A .env file in the working
// directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	if path != "" {
		return LoadFromFile(path)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides file values with TJ_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("TJ_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TJ_SESSION_TTL"); v != "" {
		c.Server.SessionTTL = v
	}
	if v := os.Getenv("TJ_MAX_TRADES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TJ_MAX_TRADES: %w", err)
		}
		c.Journal.MaxTrades = n
	}
	if v := os.Getenv("TJ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TJ_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("TJ_TRACING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TJ_TRACING: %w", err)
		}
		c.Log.Tracing = b
	}
	return nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	ttl, err := c.Server.TTL()
	if err != nil {
		return fmt.Errorf("server.session_ttl: %w", err)
	}
	if ttl < 0 {
		return fmt.Errorf("server.session_ttl must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("server.max_sessions must not be negative")
	}
	if c.Journal.MaxTrades < 1 {
		return fmt.Errorf("journal.max_trades must be at least 1")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			SessionTTL:  "30m",
			MaxSessions: 1000,
		},
		Journal: JournalConfig{
			MaxTrades: 10,
			Seed:      true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
