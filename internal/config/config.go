// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultBaseURL = "http://localhost:8000"
	DefaultTimeout = 30 * time.Second
	DefaultEnv     = "development"

	envPrefix      = "RESUME"
	configFileName = "resume_client"
)

// Config is the client configuration. Values come from, in increasing priority, the
// defaults, a YAML or JSON config file, RESUME_* environment variables and CLI flags.
type Config struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	ParserBaseURL string `mapstructure:"parser_base_url" validate:"omitempty,url"` // parse-pdf host when it differs from the API

	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gte=0"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"gte=0"`

	Env     string `mapstructure:"env" validate:"omitempty,oneof=development production"`
	Verbose bool   `mapstructure:"verbose"`

	// Credentials for commands that need a session
	Email    string `mapstructure:"email" validate:"omitempty,email"`
	Password string `mapstructure:"password"`
}

var keys = []string{
	"base_url", "parser_base_url",
	"connect_timeout", "read_timeout", "write_timeout",
	"env", "verbose", "email", "password",
}

var validate = validator.New()

// LoadConfig reads the configuration. With an empty path it looks for an optional
// resume_client.{yaml,json} in the working directory; a missing file is not an error
// then, but an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("connect_timeout", DefaultTimeout)
	v.SetDefault("read_timeout", DefaultTimeout)
	v.SetDefault("write_timeout", DefaultTimeout)
	v.SetDefault("env", DefaultEnv)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// CLI flags build c; the loaded file and environment supply defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.ParserBaseURL == "" {
		result.ParserBaseURL = defaults.ParserBaseURL
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.Password == "" {
		result.Password = defaults.Password
	}

	if result.ConnectTimeout == 0 {
		result.ConnectTimeout = defaults.ConnectTimeout
	}
	if result.ReadTimeout == 0 {
		result.ReadTimeout = defaults.ReadTimeout
	}
	if result.WriteTimeout == 0 {
		result.WriteTimeout = defaults.WriteTimeout
	}

	// Bools cannot tell unset from false, so either source turns verbose on
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// ParserURL is the base URL for document parsing.
func (c *Config) ParserURL() string {
	if c.ParserBaseURL != "" {
		return c.ParserBaseURL
	}
	return c.BaseURL
}
