package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddr     = ":3000"
	defaultTimeout        = 10 * time.Second
	defaultResponseType   = "code"
	defaultAccountAPIURL  = "https://americas.api.riotgames.com"
	defaultPlatformAPIURL = "https://na1.api.riotgames.com"
)

// Config holds all settings of the sample app. It is resolved once at
// startup and never mutated afterwards.
type Config struct {
	RSO    RSOConfig    `yaml:"rso"`
	App    AppConfig    `yaml:"app"`
	Riot   RiotConfig   `yaml:"riot"`
	Server ServerConfig `yaml:"server"`
}

// RSOConfig describes the Riot Sign-On identity provider.
type RSOConfig struct {
	BaseURL      string `yaml:"baseURL" env:"RSO_BASE_URL"`
	ClientID     string `yaml:"clientID" env:"RSO_CLIENT_ID"`
	ClientSecret string `yaml:"clientSecret" env:"RSO_CLIENT_SECRET"`
	ResponseType string `yaml:"responseType" env:"RESPONSE_TYPE"`
	Scope        string `yaml:"scope" env:"SCOPE"`
}

// AppConfig describes how this app is reachable from the browser.
type AppConfig struct {
	BaseURL      string `yaml:"baseURL" env:"APP_BASE_URL"`
	CallbackPath string `yaml:"callbackPath" env:"APP_CALLBACK_PATH"`
	ClientID     string `yaml:"clientID" env:"CLIENT_ID"`

	// SessionHandoff keeps the token set out of the redirect URL by
	// storing it server-side under a single-use random key.
	SessionHandoff bool `yaml:"sessionHandoff" env:"SESSION_HANDOFF"`
}

// RiotConfig describes the downstream Riot APIs.
type RiotConfig struct {
	APIToken           string `yaml:"apiToken" env:"RGAPI_TOKEN"`
	AccountAPIBaseURL  string `yaml:"accountAPIBaseURL" env:"ACCOUNT_API_BASE_URL"`
	PlatformAPIBaseURL string `yaml:"platformAPIBaseURL" env:"PLATFORM_API_BASE_URL"`
}

type ServerConfig struct {
	Addr    string        `yaml:"addr" env:"SERVER_ADDR"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT"`
}

// Load resolves the configuration from an optional YAML defaults file
// (RSO_SAMPLE_CONFIG), an optional .env file in the working directory or
// its parent, and the process environment. Environment variables take
// precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	if fn := os.Getenv("RSO_SAMPLE_CONFIG"); fn != "" {
		f, err := os.Open(fn)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// The sample apps keep their .env one directory above the binary.
	// Running without one is fine as long as the environment is set.
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load(filepath.Join("..", ".env"))
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.ValidateAndInitialize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ValidateAndInitialize() error {
	// Apply defaults.
	if c.RSO.ResponseType == "" {
		c.RSO.ResponseType = defaultResponseType
	}
	if c.Riot.AccountAPIBaseURL == "" {
		c.Riot.AccountAPIBaseURL = defaultAccountAPIURL
	}
	if c.Riot.PlatformAPIBaseURL == "" {
		c.Riot.PlatformAPIBaseURL = defaultPlatformAPIURL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultServerAddr
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaultTimeout
	}

	// Validate required fields.
	if c.RSO.BaseURL == "" {
		return fmt.Errorf("rso.baseURL must be set")
	}
	if c.RSO.ClientID == "" {
		return fmt.Errorf("rso.clientID must be set")
	}
	if c.RSO.ClientSecret == "" {
		return fmt.Errorf("rso.clientSecret must be set")
	}
	if c.App.BaseURL == "" {
		return fmt.Errorf("app.baseURL must be set")
	}
	if c.App.CallbackPath == "" {
		return fmt.Errorf("app.callbackPath must be set")
	}
	if !strings.HasPrefix(c.App.CallbackPath, "/") {
		return fmt.Errorf("app.callbackPath must start with '/': %s", c.App.CallbackPath)
	}
	if c.Riot.APIToken == "" {
		return fmt.Errorf("riot.apiToken must be set")
	}

	return nil
}

// TokenURL is the RSO token endpoint.
func (c *Config) TokenURL() string {
	return fmt.Sprintf("%s/token", c.RSO.BaseURL)
}

// AuthorizeURL is the RSO authorization endpoint.
func (c *Config) AuthorizeURL() string {
	return fmt.Sprintf("%s/authorize", c.RSO.BaseURL)
}

// CallbackURL is the redirect URI registered with RSO for this app.
func (c *Config) CallbackURL() string {
	return fmt.Sprintf("%s%s", c.App.BaseURL, c.App.CallbackPath)
}
