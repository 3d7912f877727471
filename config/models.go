package config

// Config holds the application configuration shared by both binaries. A
// binary supplies its own defaults; fields it has no use for stay at their
// zero value.
type Config struct {
	ListenAddress       string `mapstructure:"listen_address"`
	ArtifactDir         string `mapstructure:"artifact_dir"`
	WebDir              string `mapstructure:"web_dir"`
	RedisAddress        string `mapstructure:"redis_address"`
	RedisMaxConnections int    `mapstructure:"redis_max_connections"`
	CacheTTLSeconds     int    `mapstructure:"cache_ttl_seconds"`
	MaxBatchSize        int    `mapstructure:"max_batch_size"`
	SentryDSN           string `mapstructure:"sentry_dsn"`
}

// SepsisDefaults are the built-in settings of the sepsis prediction API.
// The container image publishes 7860, hence the default port.
func SepsisDefaults() map[string]any {
	return map[string]any{
		"listen_address":        ":7860",
		"artifact_dir":          "./artifacts/sepsis",
		"redis_address":         "",
		"redis_max_connections": 50,
		"cache_ttl_seconds":     3600,
		"max_batch_size":        32,
		"sentry_dsn":            "",
	}
}

// SentimentDefaults are the built-in settings of the sentiment demo.
func SentimentDefaults() map[string]any {
	return map[string]any{
		"listen_address": ":7861",
		"artifact_dir":   "./artifacts/sentiment",
		"web_dir":        "./web",
		"sentry_dsn":     "",
	}
}
