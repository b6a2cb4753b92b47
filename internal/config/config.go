package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration. It is loaded once in main
// and passed explicitly into the shell — the computation packages never read
// process-wide state.
type Config struct {
	Source    string      `mapstructure:"source"`
	Theme     string      `mapstructure:"theme"`
	Highlight string      `mapstructure:"highlight"`
	Infer     InferConfig `mapstructure:"infer"`
	Cache     CacheConfig `mapstructure:"cache"`
}

type InferConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// Load reads configuration from an optional config file and environment
// variables: TABMAP_INFER_ENDPOINT → infer.endpoint, and so on.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("source", "")
	v.SetDefault("theme", "dark")
	v.SetDefault("highlight", "")
	v.SetDefault("infer.endpoint", "")
	v.SetDefault("infer.timeout_ms", 4000)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", defaultCacheDir())

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "tabmap"))
	}
	_ = v.ReadInConfig() // OK if missing

	v.SetEnvPrefix("TABMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "tabmap")
	}
	return ".tabmap-cache"
}
