// Package config loads the application settings from defaults, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultOwner is the account whose repositories the portfolio shows.
const DefaultOwner = "ISAACmayamba"

type Config struct {
	Owner      string   `yaml:"owner"`
	Limit      int      `yaml:"limit"`
	MaxTopics  int      `yaml:"max_topics"`
	Images     []string `yaml:"images"`
	Source     string   `yaml:"source"`
	APIBaseURL string   `yaml:"api_base_url"`
	Addr       string   `yaml:"addr"`
	Title      string   `yaml:"title"`
	AboutFile  string   `yaml:"about_file"`

	// Token is only read from GITHUB_TOKEN so it never lands in a config file.
	Token string `yaml:"-"`
}

func Default() Config {
	return Config{
		Owner:     DefaultOwner,
		Limit:     3,
		MaxTopics: 5,
		Source:    "rest",
		Addr:      ":8080",
		Title:     "Portfolio",
	}
}

// Load builds the configuration. A missing path means defaults only;
// a .env file in the working directory is loaded when present.
// Environment variables win over the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORTFOLIO_OWNER"); v != "" {
		c.Owner = v
	}
	if v := os.Getenv("PORTFOLIO_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORTFOLIO_LIMIT %q: %w", v, err)
		}
		c.Limit = n
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Addr = ":" + v
	}
	c.Token = os.Getenv("GITHUB_TOKEN")
	return nil
}

func (c Config) Validate() error {
	if c.Owner == "" {
		return errors.New("owner is required")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	switch c.Source {
	case "rest":
	case "graphql":
		if c.Token == "" {
			return errors.New("source graphql requires GITHUB_TOKEN")
		}
	default:
		return fmt.Errorf("unknown source %q (want rest or graphql)", c.Source)
	}
	return nil
}
