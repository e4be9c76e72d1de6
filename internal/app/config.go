package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STOREFRONT_ prefix), flags, or YAML config files.
type Config struct {
	APIBaseURL  string        `default:"https://pawlus.twinepos.dev/api/online/v1" usage:"Product catalog API base URL" flag:"api-base-url"`
	StorageDir  string        `usage:"Directory for persisted client state (defaults to the user config dir)" flag:"storage-dir"`
	HTTPTimeout time.Duration `default:"10s" usage:"Catalog request timeout" flag:"http-timeout"`
	UserAgent   string        `default:"threls-storefront/1.0" usage:"User-Agent sent on catalog requests" flag:"user-agent"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and fills in the platform-specific storage directory default.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.APIBaseURL == "" {
		return nil, errors.New("API base URL is required: set STOREFRONT_API_BASE_URL")
	}

	return &cfg, nil
}

// applyPlatformDefaults resolves the storage directory against the
// platform's per-user configuration directory when none was given. An empty
// result keeps persistence in memory for the session.
func (c *Config) applyPlatformDefaults() {
	if c.StorageDir != "" {
		return
	}
	if dir, err := os.UserConfigDir(); err == nil {
		c.StorageDir = filepath.Join(dir, "threls-storefront")
	}
}
