package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the developer's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORTFOLIO_OWNER", "PORTFOLIO_LIMIT", "GITHUB_API_URL", "PORT", "GITHUB_TOKEN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	// Equivalent of t.Chdir (Go 1.24+) for the Go 1.21 toolchain.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
owner: from-file
limit: 5
images:
  - a.png
  - b.png
`), 0o644))
	t.Setenv("PORTFOLIO_OWNER", "from-env")
	t.Setenv("PORT", "9090")
	t.Setenv("GITHUB_TOKEN", "secret")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Owner)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, []string{"a.png", "b.png"}, cfg.Images)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "rest", cfg.Source)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("PORTFOLIO_OWNER=dotenv-owner\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PORTFOLIO_OWNER") })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "dotenv-owner", cfg.Owner)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("limit: [not a number"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	t.Setenv("PORTFOLIO_LIMIT", "three")
	_, err = Load("")
	assert.ErrorContains(t, err, "invalid PORTFOLIO_LIMIT")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "missing owner", mutate: func(c *Config) { c.Owner = "" }, wantErr: "owner is required"},
		{name: "zero limit", mutate: func(c *Config) { c.Limit = 0 }, wantErr: "limit must be positive"},
		{name: "unknown source", mutate: func(c *Config) { c.Source = "soap" }, wantErr: "unknown source"},
		{name: "graphql without token", mutate: func(c *Config) { c.Source = "graphql" }, wantErr: "requires GITHUB_TOKEN"},
		{name: "graphql with token", mutate: func(c *Config) { c.Source = "graphql"; c.Token = "t" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
