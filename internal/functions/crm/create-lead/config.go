package createlead

import (
	"fmt"
	"time"

	"lead-intake/internal/common/config"
	"lead-intake/internal/common/zoho"
)

type Config struct {
	Timeout      time.Duration
	LeadLastName string
	Zoho         zoho.Credentials
}

func DefaultConfig() *Config {
	return &Config{
		Timeout:      config.GetDuration(config.DefaultHTTPTimeout),
		LeadLastName: config.DefaultLeadLastName,
	}
}

// Validate checks structural settings only. Missing Zoho credentials are
// accepted and reported per request as upstream failures.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.LeadLastName == "" {
		return fmt.Errorf("lead_last_name is required")
	}
	return nil
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()
	if appConfig == nil {
		return cfg
	}

	if appConfig.HTTP.Timeout > 0 {
		cfg.Timeout = config.GetDuration(appConfig.HTTP.Timeout)
	}
	if appConfig.Lead.LastName != "" {
		cfg.LeadLastName = appConfig.Lead.LastName
	}

	cfg.Zoho = zoho.Credentials{
		ClientID:       appConfig.Zoho.ClientID,
		ClientSecret:   appConfig.Zoho.ClientSecret,
		RefreshToken:   appConfig.Zoho.RefreshToken,
		APIDomain:      appConfig.Zoho.APIDomain,
		AccountsDomain: appConfig.Zoho.AccountsDomain,
	}

	return cfg
}
