package config

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/calleventhub/shipdog/internal/constants"
	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// newViperInstance creates a Viper instance with standard shipdog settings:
// defaults, the SHIPDOG_ environment prefix, and a dot-to-underscore key
// replacer (e.g. SHIPDOG_REPO_DIR overrides repo.dir).
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SHIPDOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are expected and not an error; actual configuration
// problems (unreadable file, bad values) are.
//
// The context carries the logger used for debug output; config file reads
// are fast local I/O and are not cancelable.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence), then project config merged
	// over it.
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, shiperrors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("repo.dir", cfg.Repo.Dir).
		Strs("build.command", cfg.Build.Command).
		Str("service.name", cfg.Service.Name).
		Str("audit.log_path", cfg.Audit.LogPath).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, shiperrors.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

// loadGlobalConfig attempts to load the global config file
// (~/.shipdog/config.yaml). Missing file or home dir is skipped silently.
func loadGlobalConfig(v *viper.Viper) error {
	globalDir, err := GlobalConfigDir()
	if err != nil {
		return nil //nolint:nilerr // no home dir means no global config, not an error
	}

	path := filepath.Join(globalDir, constants.ConfigFileName)
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return shiperrors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file
// (.shipdog/config.yaml in the working directory), merging over any global
// values already read.
func loadProjectConfig(v *viper.Viper) error {
	projectDir, err := ProjectConfigDir()
	if err != nil {
		return err
	}

	path := filepath.Join(projectDir, constants.ConfigFileName)
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return shiperrors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from
// strings and space-separated command vectors from environment variables.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(" "),
		),
	)
}
