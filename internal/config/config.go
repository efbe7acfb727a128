package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the emote cache CLI.
type Config struct {
	// Base URLs for the provider APIs (configurable for testing)
	TwitchBaseURL string `mapstructure:"twitch_base_url"`
	BTTVBaseURL   string `mapstructure:"bttv_base_url"`
	FFZBaseURL    string `mapstructure:"ffz_base_url"`

	// HTTPTimeout bounds a single provider request
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`

	// What to prefetch
	FetchGlobal    bool     `mapstructure:"fetch_global"`
	TwitchChannels []int    `mapstructure:"twitch_channels"`
	BTTVChannels   []int    `mapstructure:"bttv_channels"`
	FFZChannels    []string `mapstructure:"ffz_channels"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables (all optional, defaults to production):
//   - TWITCH_BASE_URL
//   - BTTV_BASE_URL
//   - FFZ_BASE_URL
//   - HTTP_TIMEOUT
//   - FETCH_GLOBAL
//
// Channel lists come from the config file only.
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("twitch_base_url", "https://api.twitchemotes.com/api/v4")
	v.SetDefault("bttv_base_url", "https://api.betterttv.net/3")
	v.SetDefault("ffz_base_url", "https://api.frankerfacez.com/v1")
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("fetch_global", true)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.emotecache")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("twitch_base_url", "TWITCH_BASE_URL")
	v.BindEnv("bttv_base_url", "BTTV_BASE_URL")
	v.BindEnv("ffz_base_url", "FFZ_BASE_URL")
	v.BindEnv("http_timeout", "HTTP_TIMEOUT")
	v.BindEnv("fetch_global", "FETCH_GLOBAL")

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate base URLs; the emote APIs are unauthenticated, so these are
	// the only required fields
	var missing []string
	if config.TwitchBaseURL == "" {
		missing = append(missing, "TWITCH_BASE_URL")
	}
	if config.BTTVBaseURL == "" {
		missing = append(missing, "BTTV_BASE_URL")
	}
	if config.FFZBaseURL == "" {
		missing = append(missing, "FFZ_BASE_URL")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return config, nil
}
