// Package configs loads server configuration from the environment.
package configs

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the server settings. Engine behavior is configured per
// request, not here.
type Config struct {
	Port         string
	GinMode      string
	AllowOrigins []string
}

// Load reads configuration with TABLECAST_-prefixed environment
// overrides and sensible defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("TABLECAST")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("allow_origins", "*")

	return &Config{
		Port:         v.GetString("port"),
		GinMode:      v.GetString("gin_mode"),
		AllowOrigins: splitOrigins(v.GetString("allow_origins")),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
