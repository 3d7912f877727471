package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the optional config file, applies the binary's defaults
// and initializes the global cfg variable. It ensures that the configuration
// is set only once.
func LoadConfig(configFile string, defaults map[string]any) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = parseConfig(configFile, defaults)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

func parseConfig(configFile string, defaults map[string]any) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.ListenAddress == "" {
		return nil, errors.New("listen_address is required")
	}
	if configuration.ArtifactDir == "" {
		return nil, errors.New("artifact_dir is required")
	}
	if configuration.RedisAddress != "" && configuration.CacheTTLSeconds <= 0 {
		return nil, errors.New("cache_ttl_seconds must be positive when redis is enabled")
	}
	if _, ok := defaults["max_batch_size"]; ok && configuration.MaxBatchSize <= 0 {
		return nil, errors.New("max_batch_size must be positive")
	}

	return &configuration, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
