package globus

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/romgrk/globus-go/internal/httpx"
	"github.com/romgrk/globus-go/version"
)

const (
	// DefaultTransferBaseURL is used when Config.TransferBaseURL is unset.
	DefaultTransferBaseURL = "https://transfer.api.globusonline.org/v0.10"
	// DefaultIdentityBaseURL is used when Config.IdentityBaseURL is unset.
	DefaultIdentityBaseURL = "https://nexus.api.globusonline.org"
	// DefaultHTTPTimeout controls the default HTTP client timeout if none is provided.
	DefaultHTTPTimeout = 30 * time.Second
)

// HTTPClient is the transport used to send requests. *http.Client satisfies it.
type HTTPClient = httpx.Doer

// Config encapsulates the options required to instantiate a Client.
type Config struct {
	TransferBaseURL string
	IdentityBaseURL string
	HTTPClient      HTTPClient
	// Logger receives one debug entry per request. Defaults to a logrus
	// logger at warn level.
	Logger    logrus.FieldLogger
	UserAgent string
}

// Validate performs basic sanity checks on the configuration and fills defaults for optional fields.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	transferURL, err := normalizeBaseURL(c.TransferBaseURL, DefaultTransferBaseURL)
	if err != nil {
		return fmt.Errorf("invalid TransferBaseURL: %w", err)
	}
	c.TransferBaseURL = transferURL

	identityURL, err := normalizeBaseURL(c.IdentityBaseURL, DefaultIdentityBaseURL)
	if err != nil {
		return fmt.Errorf("invalid IdentityBaseURL: %w", err)
	}
	c.IdentityBaseURL = identityURL

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if c.Logger == nil {
		logger := logrus.New()
		logger.SetLevel(logrus.WarnLevel)
		c.Logger = logger
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = "globus-go/" + version.String()
	}

	return nil
}

func normalizeBaseURL(raw, fallback string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = fallback
	}
	if _, err := url.ParseRequestURI(value); err != nil {
		return "", err
	}
	return strings.TrimRight(value, "/"), nil
}

// LoadConfig builds a Config from GLOBUS_* environment variables after loading
// the given dotenv files, if any. Recognised keys:
//
//	GLOBUS_TRANSFER_BASE_URL
//	GLOBUS_IDENTITY_BASE_URL
//	GLOBUS_HTTP_TIMEOUT   (Go duration, e.g. "15s")
//	GLOBUS_LOG_LEVEL      (logrus level name)
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("globus")
	v.AutomaticEnv()

	v.SetDefault("transfer_base_url", DefaultTransferBaseURL)
	v.SetDefault("identity_base_url", DefaultIdentityBaseURL)
	v.SetDefault("http_timeout", DefaultHTTPTimeout)
	v.SetDefault("log_level", logrus.WarnLevel.String())

	level, err := logrus.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid GLOBUS_LOG_LEVEL: %w", err)
	}
	timeout := v.GetDuration("http_timeout")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid GLOBUS_HTTP_TIMEOUT %q", v.GetString("http_timeout"))
	}

	logger := logrus.New()
	logger.SetLevel(level)

	cfg := Config{
		TransferBaseURL: v.GetString("transfer_base_url"),
		IdentityBaseURL: v.GetString("identity_base_url"),
		HTTPClient:      &http.Client{Timeout: timeout},
		Logger:          logger,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
