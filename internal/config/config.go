// Package config handles configuration loading for EUDR client tooling.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax). This allows credentials to
// be injected at runtime instead of living in the file.
//
// # Example Configuration
//
//	service:
//	  environment: acceptance
//	  webServiceClientId: eudr-test
//
//	credentials:
//	  username: ${EUDR_USERNAME}
//	  password: ${EUDR_PASSWORD}
//
//	http:
//	  timeout: 10s
//
//	security:
//	  timestampValidity: 60s
//
// See [Load] for loading configuration from a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/client"
)

// Config is the root configuration structure
type Config struct {
	Service     ServiceConfig     `yaml:"service"`
	Credentials CredentialsConfig `yaml:"credentials"`
	HTTP        HTTPConfig        `yaml:"http"`
	Security    SecurityConfig    `yaml:"security"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServiceConfig selects the TRACES deployment to talk to
type ServiceConfig struct {
	// Environment is "production" or "acceptance". Ignored when Endpoint
	// is set explicitly.
	Environment string `yaml:"environment"`
	// Endpoint overrides the environment-derived base URL.
	Endpoint string `yaml:"endpoint"`
	// WebServiceClientID defaults to the id matching the environment.
	WebServiceClientID string `yaml:"webServiceClientId"`
}

// CredentialsConfig holds the web service credentials
type CredentialsConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Duration wraps time.Duration so YAML values can be written as "10s"
// or "1m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration '%s': %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// HTTPConfig holds transport settings
type HTTPConfig struct {
	Timeout Duration `yaml:"timeout"`
	// InsecureSkipVerify disables certificate verification. Only
	// meaningful against test deployments.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify"`
}

// SecurityConfig holds WS-Security settings
type SecurityConfig struct {
	// TimestampValidity is the lifetime of the security timestamp.
	TimestampValidity Duration `yaml:"timestampValidity"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Service.Environment == "" {
		c.Service.Environment = "acceptance"
	}
	if c.Service.WebServiceClientID == "" {
		switch c.Service.Environment {
		case "production":
			c.Service.WebServiceClientID = "eudr"
		case "acceptance":
			c.Service.WebServiceClientID = "eudr-test"
		}
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = Duration(10 * time.Second)
	}
	if c.Security.TimestampValidity == 0 {
		c.Security.TimestampValidity = Duration(60 * time.Second)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func (c *Config) validate() error {
	switch c.Service.Environment {
	case "production", "acceptance":
		// Valid environments
	default:
		if c.Service.Endpoint == "" {
			return fmt.Errorf("service.environment must be 'production' or 'acceptance', got '%s'", c.Service.Environment)
		}
	}

	if c.Credentials.Username == "" {
		return fmt.Errorf("credentials.username is required")
	}
	if c.Credentials.Password == "" {
		return fmt.Errorf("credentials.password is required")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Logging.Level)
	}

	return nil
}

// ClientConfig converts the file configuration into the client's
// ServiceConfig.
func (c *Config) ClientConfig() client.ServiceConfig {
	return client.ServiceConfig{
		Endpoint:           c.Service.Endpoint,
		Username:           c.Credentials.Username,
		Password:           c.Credentials.Password,
		WebServiceClientID: c.Service.WebServiceClientID,
		TimestampValidity:  time.Duration(c.Security.TimestampValidity),
		RequestTimeout:     time.Duration(c.HTTP.Timeout),
		InsecureSkipVerify: c.HTTP.InsecureSkipVerify,
	}
}
