// Package app assembles the order bot from the reusable core and the
// order domain: configuration, bootstrap and the Telegram run options.
package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/SummitSummer/zzxc/core/config"
	coredatabase "github.com/SummitSummer/zzxc/core/database"
	"github.com/SummitSummer/zzxc/orders"
)

// PaymentConfig points at the payment gateway used for order links.
type PaymentConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"PAYMENT_BASE_URL"`
}

// MenuConfig holds presentation settings for the main menu.
type MenuConfig struct {
	// Image is a local path to the menu illustration; empty means text-only menu.
	Image string `yaml:"image" envconfig:"MENU_IMAGE"`
}

// Config is the full application configuration: the core bot settings
// inline, plus order-domain sections.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Payment  PaymentConfig       `yaml:"payment"`
	Menu     MenuConfig          `yaml:"menu"`
	// Plans overrides the built-in subscription catalog when present.
	Plans []orders.Plan `yaml:"plans"`
}

// CoreConfig exposes the embedded core configuration to the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads the application config from YAML, overlays environment
// variables and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("app: parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("app: process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	return &cfg, nil
}
