// Package config defines the client settings and loads them from viper.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"crate/internal/errors"
)

// Configuration keys. Environment variables use the CRATE_ prefix with dots
// replaced by underscores, e.g. CRATE_SERVER_DEFAULT.
const (
	KeyServerDefault   = "server.default"
	KeyServerRemote    = "server.remote"
	KeyDefaultUsername = "login.default_username"
	KeyHTTPTimeout     = "http.timeout"
	KeyRateLimit       = "http.rate_limit"
	KeyRateBurst       = "http.rate_burst"
	KeyCacheTTL        = "cache.ttl"
	KeyCacheCapacity   = "cache.capacity"
	KeyBanner          = "ui.banner"

	EnvPrefix = "CRATE"
)

// TargetRemote selects the remote server on the command line.
const TargetRemote = "remote"

// Settings holds the effective client configuration.
type Settings struct {
	DefaultURL      string
	RemoteURL       string
	DefaultUsername string
	HTTPTimeout     time.Duration
	RateLimit       float64
	RateBurst       int
	CacheTTL        time.Duration
	CacheCapacity   int
	Banner          bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		DefaultURL:      "http://localhost:8080/api/v1",
		RemoteURL:       "http://catalog.example.com/api/v1",
		DefaultUsername: "tf-test",
		HTTPTimeout:     30 * time.Second, //nolint:mnd // default request timeout
		RateLimit:       10,              //nolint:mnd // requests per second
		RateBurst:       20,              //nolint:mnd // burst size
		CacheTTL:        5 * time.Minute, //nolint:mnd // product cache lifetime
		CacheCapacity:   256,             //nolint:mnd // cached products
		Banner:          true,
	}
}

// SetDefaults registers the built-in settings and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyServerDefault, d.DefaultURL)
	v.SetDefault(KeyServerRemote, d.RemoteURL)
	v.SetDefault(KeyDefaultUsername, d.DefaultUsername)
	v.SetDefault(KeyHTTPTimeout, d.HTTPTimeout)
	v.SetDefault(KeyRateLimit, d.RateLimit)
	v.SetDefault(KeyRateBurst, d.RateBurst)
	v.SetDefault(KeyCacheTTL, d.CacheTTL)
	v.SetDefault(KeyCacheCapacity, d.CacheCapacity)
	v.SetDefault(KeyBanner, d.Banner)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		DefaultURL:      strings.TrimSpace(v.GetString(KeyServerDefault)),
		RemoteURL:       strings.TrimSpace(v.GetString(KeyServerRemote)),
		DefaultUsername: strings.TrimSpace(v.GetString(KeyDefaultUsername)),
		HTTPTimeout:     v.GetDuration(KeyHTTPTimeout),
		RateLimit:       v.GetFloat64(KeyRateLimit),
		RateBurst:       v.GetInt(KeyRateBurst),
		CacheTTL:        v.GetDuration(KeyCacheTTL),
		CacheCapacity:   v.GetInt(KeyCacheCapacity),
		Banner:          v.GetBool(KeyBanner),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every setting is usable.
func (s *Settings) Validate() error {
	if err := validateURL(KeyServerDefault, s.DefaultURL); err != nil {
		return err
	}
	if err := validateURL(KeyServerRemote, s.RemoteURL); err != nil {
		return err
	}
	if s.HTTPTimeout <= 0 {
		return errors.NewConfigurationError(KeyHTTPTimeout, s.HTTPTimeout.String(), "must be positive", nil)
	}
	if s.RateLimit <= 0 {
		return errors.NewConfigurationError(KeyRateLimit, fmt.Sprint(s.RateLimit), "must be positive", nil)
	}
	if s.RateBurst <= 0 {
		return errors.NewConfigurationError(KeyRateBurst, fmt.Sprint(s.RateBurst), "must be positive", nil)
	}
	if s.CacheTTL <= 0 {
		return errors.NewConfigurationError(KeyCacheTTL, s.CacheTTL.String(), "must be positive", nil)
	}
	if s.CacheCapacity <= 0 {
		return errors.NewConfigurationError(KeyCacheCapacity, fmt.Sprint(s.CacheCapacity), "must be positive", nil)
	}
	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return errors.NewConfigurationError(field, raw, "base URL must not be empty", nil)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.NewConfigurationError(field, raw, "invalid base URL", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.NewConfigurationError(field, raw, "base URL must use http or https", nil)
	}
	if u.Host == "" {
		return errors.NewConfigurationError(field, raw, "base URL must include a host", nil)
	}
	return nil
}

// BaseURL resolves the optional command-line target to a server address:
// no target selects the default server and "remote" the remote one.
func (s *Settings) BaseURL(target string) (string, error) {
	switch target {
	case "":
		return s.DefaultURL, nil
	case TargetRemote:
		return s.RemoteURL, nil
	default:
		return "", errors.NewValidationError("target", target, "one_of",
			fmt.Sprintf("unknown target %q, expected no argument or %q", target, TargetRemote))
	}
}
