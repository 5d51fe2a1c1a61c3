package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the complete gateway configuration. It is built once at process
// start and treated as immutable afterwards.
type Config struct {
	Venue   VenueConfig   `yaml:"venue"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// VenueConfig holds the upstream trading venue endpoints and credentials.
// All credential fields are optional; which ones are present decides the
// authentication strategy used for every venue call.
type VenueConfig struct {
	Demo           bool   `yaml:"demo"`             // demo exchange vs production
	BaseURL        string `yaml:"base_url"`         // override; derived from Demo if empty
	KeyID          string `yaml:"key_id"`           // API key id from the venue dashboard
	PrivateKeyPEM  string `yaml:"private_key_pem"`  // inline PEM
	PrivateKeyPath string `yaml:"private_key_path"` // or path to a PEM file
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
}

// OpenAIConfig configures the remote text-generation client.
// An empty APIKey means the AI branch is not configured.
type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

// StorageConfig controls the optional recommendation event log.
// An empty DSN disables persistence entirely.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite file path, or ":memory:"
}

// ServerConfig controls the inbound HTTP surface.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// LogConfig controls log level and format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

const (
	demoBaseURL = "https://demo-api.kalshi.co/trade-api/v2"
	prodBaseURL = "https://api.elections.kalshi.com/trade-api/v2"
)

// Load reads the YAML config file and the .env file if one exists.
// Environment variables override the YAML values for credentials and logging,
// so secrets never need to live in the config file.
func Load(path string) (*Config, error) {
	// Load .env if present (silently skip if missing)
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// VenueBaseURL returns the configured base URL, or the demo/production
// default depending on the Demo flag.
func (c *Config) VenueBaseURL() string {
	if c.Venue.BaseURL != "" {
		return c.Venue.BaseURL
	}
	if c.Venue.Demo {
		return demoBaseURL
	}
	return prodBaseURL
}

// PrivateKeyPEM returns the signing key material: the inline PEM if set,
// otherwise the contents of the key file. Empty string means no key configured.
func (c *Config) PrivateKeyPEM() (string, error) {
	if c.Venue.PrivateKeyPEM != "" {
		return c.Venue.PrivateKeyPEM, nil
	}
	if c.Venue.PrivateKeyPath == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.Venue.PrivateKeyPath)
	if err != nil {
		return "", fmt.Errorf("config.PrivateKeyPEM: read %q: %w", c.Venue.PrivateKeyPath, err)
	}
	return string(data), nil
}

// applyEnvOverrides overrides values with environment variables when present.
// The variable names match the original deployment environment.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KALSHI_API_KEY"); v != "" {
		cfg.Venue.KeyID = v
	}
	if v := os.Getenv("KALSHI_PRIVATE_KEY"); v != "" {
		cfg.Venue.PrivateKeyPEM = v
	}
	if v := os.Getenv("KALSHI_PRIVATE_KEY_PATH"); v != "" {
		cfg.Venue.PrivateKeyPath = v
	}
	if v := os.Getenv("KALSHI_EMAIL"); v != "" {
		cfg.Venue.Email = v
	}
	if v := os.Getenv("KALSHI_PASSWORD"); v != "" {
		cfg.Venue.Password = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults makes sure required values have sensible defaults.
func setDefaults(cfg *Config) {
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.OpenAI.Temperature <= 0 {
		cfg.OpenAI.Temperature = 0.7
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8001"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
