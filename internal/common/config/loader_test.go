package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, "app:\n  name: lead-intake-test\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "lead-intake-test", cfg.App.Name)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultLeadLastName, cfg.Lead.LastName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_ZohoSection(t *testing.T) {
	path := writeConfigFile(t, `
zoho:
  client_id: file-client
  client_secret: file-secret
  refresh_token: file-refresh
  api_domain: "https://www.zohoapis.eu/"
  accounts_domain: " https://accounts.zoho.eu/ "
http:
  timeout: 5000
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "file-client", cfg.Zoho.ClientID)
	assert.Equal(t, "file-secret", cfg.Zoho.ClientSecret)
	assert.Equal(t, "file-refresh", cfg.Zoho.RefreshToken)
	assert.Equal(t, "https://www.zohoapis.eu", cfg.Zoho.APIDomain, "trailing slash is trimmed")
	assert.Equal(t, "https://accounts.zoho.eu", cfg.Zoho.AccountsDomain)
	assert.Equal(t, 5*time.Second, GetDuration(cfg.HTTP.Timeout))
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("ZOHO_CLIENT_ID", "env-client")
	t.Setenv("ZOHO_API_DOMAIN", "https://www.zohoapis.in")
	t.Setenv("LEAD_LAST_NAME", "Website Lead")

	path := writeConfigFile(t, "zoho:\n  client_id: file-client\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "env-client", cfg.Zoho.ClientID)
	assert.Equal(t, "https://www.zohoapis.in", cfg.Zoho.APIDomain)
	assert.Equal(t, "Website Lead", cfg.Lead.LastName)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("LEAD_INTAKE_TEST_SECRET", "expanded-secret")

	path := writeConfigFile(t, "zoho:\n  client_secret: ${LEAD_INTAKE_TEST_SECRET}\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-secret", cfg.Zoho.ClientSecret)
}

func TestLoadFromFile_MissingCredentialsIsNotAnError(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  level: debug\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Zoho.ClientID)
	assert.Empty(t, cfg.Zoho.RefreshToken)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "port out of range",
			content: "server:\n  port: 70000\n",
			errMsg:  "server.port must be between 1 and 65535",
		},
		{
			name:    "negative timeout",
			content: "http:\n  timeout: -1\n",
			errMsg:  "http.timeout must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
