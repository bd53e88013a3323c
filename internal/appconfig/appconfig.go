// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// defaultLatitude and defaultLongitude point at the fixed location the
	// server reports weather for when a request carries no override.
	defaultLatitude  = 51.836316614873176
	defaultLongitude = 5.79300494667676
	// defaultTimezone is passed through to the weather provider.
	defaultTimezone = "Europe/Amsterdam"
	// defaultListenAddr is where the HTTP transport binds.
	defaultListenAddr = ":8000"
	// defaultProviderURL is the Open-Meteo API root.
	defaultProviderURL = "https://api.open-meteo.com"
	// defaultTimeoutSeconds bounds each outbound provider call.
	defaultTimeoutSeconds = 8
)

// Config represents the top-level application configuration.
type Config struct {
	Latitude       float64 `mapstructure:"latitude"`
	Longitude      float64 `mapstructure:"longitude"`
	Timezone       string  `mapstructure:"timezone"`
	ListenAddr     string  `mapstructure:"listen"`
	ProviderURL    string  `mapstructure:"providerUrl"`
	TimeoutSeconds int     `mapstructure:"timeout"`
	Debug          bool    `mapstructure:"debug"`
}

// RequestTimeout returns the timeout duration for outbound provider calls,
// falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from an optional YAML file and WEATHER_* env
// variables, applying defaults for anything left unset. An empty path skips
// the file and uses defaults plus environment only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("latitude", defaultLatitude)
	v.SetDefault("longitude", defaultLongitude)
	v.SetDefault("timezone", defaultTimezone)
	v.SetDefault("listen", defaultListenAddr)
	v.SetDefault("providerUrl", defaultProviderURL)
	v.SetDefault("timeout", defaultTimeoutSeconds)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("WEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	if config.Timezone == "" {
		return Config{}, fmt.Errorf("timezone must not be empty")
	}
	if config.ProviderURL == "" {
		return Config{}, fmt.Errorf("providerUrl must not be empty")
	}

	return config, nil
}
