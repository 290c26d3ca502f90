// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Zoho    ZohoConfig    `mapstructure:"zoho"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Server  ServerConfig  `mapstructure:"server"`
	Lead    LeadConfig    `mapstructure:"lead"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ZohoConfig holds the single set of CRM credentials. Values are passed to
// the function as-is; an empty value is not rejected here and surfaces as an
// upstream failure instead.
type ZohoConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RefreshToken string `mapstructure:"refresh_token"`
	APIDomain    string `mapstructure:"api_domain"`

	// AccountsDomain overrides the accounts domain derived from APIDomain.
	AccountsDomain string `mapstructure:"accounts_domain"`
}

type HTTPConfig struct {
	Timeout int `mapstructure:"timeout"` // milliseconds
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

type LeadConfig struct {
	LastName string `mapstructure:"last_name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
