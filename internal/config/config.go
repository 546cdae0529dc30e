// Package config loads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	ErrAPIURLInvalid   = errors.New("API_URL must be an absolute URL with scheme and host")
	ErrPortInvalid     = errors.New("PORT must be between 1 and 65535")
	ErrGinModeUnknown  = errors.New("GIN_MODE must be one of 'debug', 'release' or 'test'")
	ErrLocaleInvalid   = errors.New("LOCALE must be a BCP 47 language tag such as 'es-MX'")
	ErrTimezoneInvalid = errors.New("TIMEZONE must be 'Local', 'UTC' or an IANA time zone name")
	ErrCurrencyUnknown = errors.New("no currency could be determined for the locale")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL    *url.URL
	Port      int
	GinMode   string
	LogFormat string
	DataDir   string
	Locale    language.Tag
	Location  *time.Location
	Currency  currency.Unit // Derived from the region of the locale
}

type values struct {
	APIURL    string `mapstructure:"api_url"`
	Port      int    `mapstructure:"port"`
	GinMode   string `mapstructure:"gin_mode"`
	LogFormat string `mapstructure:"log_format"`
	DataDir   string `mapstructure:"data_dir"`
	Locale    string `mapstructure:"locale"`
	Timezone  string `mapstructure:"timezone"`
}

// Load reads the configuration from the environment, using defaults for
// all unset variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api_url", "http://localhost:8080")
	v.SetDefault("port", 8080)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_format", "")
	v.SetDefault("data_dir", "data")
	v.SetDefault("locale", "es-MX")
	v.SetDefault("timezone", "Local")

	v.AutomaticEnv()

	var raw values
	if err := v.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return parse(raw)
}

func parse(raw values) (Config, error) {
	c := Config{
		Port:      raw.Port,
		GinMode:   raw.GinMode,
		LogFormat: raw.LogFormat,
		DataDir:   raw.DataDir,
	}

	u, err := url.Parse(raw.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("%w, got '%s'", ErrAPIURLInvalid, raw.APIURL)
	}
	c.APIURL = u

	if c.Port < 1 || c.Port > 65535 {
		return Config{}, fmt.Errorf("%w, got %d", ErrPortInvalid, c.Port)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("%w, got '%s'", ErrGinModeUnknown, c.GinMode)
	}

	c.Locale, err = language.Parse(raw.Locale)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLocaleInvalid, err)
	}

	c.Location, err = time.LoadLocation(raw.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrTimezoneInvalid, err)
	}

	c.Currency, err = currencyOf(c.Locale)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// currencyOf returns the currency used in the region of the tag.
func currencyOf(tag language.Tag) (currency.Unit, error) {
	region, _ := tag.Region()
	if unit, ok := currency.FromRegion(region); ok {
		return unit, nil
	}

	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return currency.Unit{}, fmt.Errorf("%w '%s'", ErrCurrencyUnknown, tag)
	}

	return unit, nil
}
