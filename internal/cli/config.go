// Config loading for the pinboard CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pinboard/internal/memory"
	"github.com/mesh-intelligence/pinboard/internal/sqlite"
	"github.com/mesh-intelligence/pinboard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"

	// defaultDataDir is used when no data directory is specified by flag
	// or config.
	defaultDataDir = ".pinboard-db"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper and applies flag overrides. A missing config.yaml is not an error;
// defaults apply.
func loadConfig() (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(resolveConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend: v.GetString(cfgKeyBackend),
		DataDir: v.GetString(cfgKeyDataDir),
	}

	// Flags take precedence over config.yaml.
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// openStore loads the configuration, constructs the configured backend, and
// attaches it. The caller must defer store.Detach().
func openStore() (types.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var store types.Store
	switch cfg.Backend {
	case types.BackendSQLite:
		store = sqlite.NewBackend()
	case types.BackendMemory:
		store = memory.NewBackend()
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}

	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}
