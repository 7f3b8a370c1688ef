package globus

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConfigValidateFillsDefaults(t *testing.T) {
	cfg := Config{}

	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultTransferBaseURL, cfg.TransferBaseURL)
	require.Equal(t, DefaultIdentityBaseURL, cfg.IdentityBaseURL)
	require.NotNil(t, cfg.HTTPClient)
	require.NotNil(t, cfg.Logger)
	require.Equal(t, "globus-go/v0.1.0", cfg.UserAgent)
}

func TestConfigValidateRespectsCustomValues(t *testing.T) {
	httpClient := &http.Client{Timeout: time.Second}
	cfg := Config{
		TransferBaseURL: " https://mock.example/transfer/ ",
		IdentityBaseURL: "https://mock.example/identity",
		HTTPClient:      httpClient,
		UserAgent:       "custom",
	}

	require.NoError(t, cfg.Validate())
	require.Equal(t, "https://mock.example/transfer", cfg.TransferBaseURL)
	require.Equal(t, "https://mock.example/identity", cfg.IdentityBaseURL)
	require.Same(t, httpClient, cfg.HTTPClient)
	require.Equal(t, "custom", cfg.UserAgent)
}

func TestConfigValidateRejectsInvalidURLs(t *testing.T) {
	cfg := Config{TransferBaseURL: "not a url"}
	require.Error(t, cfg.Validate())

	cfg = Config{IdentityBaseURL: "::"}
	require.Error(t, cfg.Validate())

	var nilCfg *Config
	require.Error(t, nilCfg.Validate())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("GLOBUS_TRANSFER_BASE_URL", "https://mock.example/v0.10")
	t.Setenv("GLOBUS_HTTP_TIMEOUT", "5s")
	t.Setenv("GLOBUS_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://mock.example/v0.10", cfg.TransferBaseURL)
	require.Equal(t, DefaultIdentityBaseURL, cfg.IdentityBaseURL)

	httpClient, ok := cfg.HTTPClient.(*http.Client)
	require.True(t, ok)
	require.Equal(t, 5*time.Second, httpClient.Timeout)

	logger, ok := cfg.Logger.(*logrus.Logger)
	require.True(t, ok)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestLoadConfigFromDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GLOBUS_IDENTITY_BASE_URL=https://identity.mock.example/\n"), 0o600))
	t.Setenv("GLOBUS_IDENTITY_BASE_URL", "")
	require.NoError(t, os.Unsetenv("GLOBUS_IDENTITY_BASE_URL"))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://identity.mock.example", cfg.IdentityBaseURL)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("GLOBUS_LOG_LEVEL", "chatty")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("GLOBUS_LOG_LEVEL", "info")
	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
