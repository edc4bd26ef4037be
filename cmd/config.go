package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configDir  = ".neon"
	configName = "config"
	configType = "toml"
	envPrefix  = "NEON"

	keyAccountsPath   = "accounts.path"
	keyAccountsSource = "accounts.source"
	keyStoreBackend   = "store.backend"
	keyRedisURL       = "store.redis_url"
	keyPostgresURL    = "store.postgres_url"
	keyFileRoot       = "store.file_root"
	keyStoreFallback  = "store.fallback"
	keyIdentityURL    = "identity.endpoint"
	keyIdentityAPIKey = "identity.api_key"
	keyIdentityWait   = "identity.timeout"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyLogFile        = "log.file"
	keyMetricsAddr    = "metrics.addr"
	keyTimeRange      = "panel.time_range"
	keyWaitTimeout    = "panel.wait_timeout"

	sourceTOML    = "toml"
	sourceGraphQL = "graphql"

	backendFile     = "file"
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

// loadConfig reads ~/.neon/config.toml when present. Every key can be
// overridden with a NEON_ environment variable, e.g. NEON_STORE_BACKEND.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyAccountsPath, filepath.Join(homeDir, configDir, "accounts.toml"))
	cfg.SetDefault(keyAccountsSource, sourceTOML)
	cfg.SetDefault(keyStoreBackend, backendFile)
	cfg.SetDefault(keyFileRoot, filepath.Join(homeDir, configDir, "documents"))
	cfg.SetDefault(keyStoreFallback, true)
	cfg.SetDefault(keyIdentityWait, 10*time.Second)
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyLogFormat, "text")
	cfg.SetDefault(keyWaitTimeout, 30*time.Second)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}
