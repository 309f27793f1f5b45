package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Provider describes one configured backend. APIKey may be given inline or
// resolved from the environment variable named by APIKeyEnv at load time.
type Provider struct {
	Name      string `toml:"name"`
	Kind      string `toml:"kind"`
	Model     string `toml:"model"`
	APIKey    string `toml:"api_key"`
	APIKeyEnv string `toml:"api_key_env"`
	BaseURL   string `toml:"base_url"`
}

type ArenaConfig struct {
	Arbiter        string `toml:"arbiter"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ShortAnswers   bool   `toml:"short_answers"`
	Seed           string `toml:"seed"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Arena     ArenaConfig  `toml:"arena"`
	Server    ServerConfig `toml:"server"`
	Providers []Provider   `toml:"providers"`
}

var knownKinds = map[string]bool{
	"openai": true,
	"groq":   true,
	"gemini": true,
	"claude": true,
	"ollama": true,
}

// Load reads the TOML config at path, resolves api_key_env references and
// applies ARENA_* environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := &Config{
		Arena: ArenaConfig{
			TimeoutSeconds: 30,
			ShortAnswers:   true,
		},
		Server: ServerConfig{Port: "8080"},
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	for i := range cfg.Providers {
		p := &cfg.Providers[i]
		if p.APIKey == "" && p.APIKeyEnv != "" {
			p.APIKey = os.Getenv(p.APIKeyEnv)
		}
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ARENA_ARBITER"); v != "" {
		c.Arena.Arbiter = v
	}
	if v := os.Getenv("ARENA_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Arena.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("ARENA_SEED"); v != "" {
		c.Arena.Seed = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}

// Validate checks everything that must hold before any provider is dialed.
func (c *Config) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("no providers configured")
	}
	if c.Arena.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.Arena.TimeoutSeconds)
	}

	seen := make(map[string]bool, len(c.Providers))
	for _, p := range c.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider with empty name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate provider name %q", p.Name)
		}
		seen[p.Name] = true
		if !knownKinds[p.Kind] {
			return fmt.Errorf("provider %q: unsupported kind %q", p.Name, p.Kind)
		}
		if p.Model == "" {
			return fmt.Errorf("provider %q: model is required", p.Name)
		}
	}

	if c.Arena.Arbiter == "" {
		return fmt.Errorf("arena.arbiter is required")
	}
	if !seen[c.Arena.Arbiter] {
		return fmt.Errorf("arbiter %q is not a configured provider", c.Arena.Arbiter)
	}
	return nil
}

// Timeout returns the per-provider deadline as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Arena.TimeoutSeconds) * time.Second
}
