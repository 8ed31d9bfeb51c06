package config

import (
	"fmt"

	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// Validate checks a Config for values the orchestrator cannot work with.
// All reported errors wrap a config sentinel so callers can categorize them
// with errors.Is().
func Validate(cfg *Config) error {
	if cfg == nil {
		return shiperrors.ErrConfigNil
	}

	if err := validateRepo(&cfg.Repo); err != nil {
		return err
	}
	if err := validateBuild(&cfg.Build); err != nil {
		return err
	}
	if err := validateService(&cfg.Service); err != nil {
		return err
	}
	if cfg.Audit.LogPath == "" {
		return fmt.Errorf("%w: audit.log_path %w", shiperrors.ErrConfigInvalidAudit, shiperrors.ErrEmptyValue)
	}
	if cfg.Listener.Port < 1 || cfg.Listener.Port > 65535 {
		return fmt.Errorf("%w: listener.port %d: %w", shiperrors.ErrConfigInvalidListener, cfg.Listener.Port, shiperrors.ErrValueOutOfRange)
	}

	return nil
}

func validateRepo(repo *RepoConfig) error {
	if repo.Dir == "" {
		return fmt.Errorf("%w: repo.dir %w", shiperrors.ErrConfigInvalidRepo, shiperrors.ErrEmptyValue)
	}
	if repo.Remote == "" {
		return fmt.Errorf("%w: repo.remote %w", shiperrors.ErrConfigInvalidRepo, shiperrors.ErrEmptyValue)
	}
	return nil
}

func validateBuild(build *BuildConfig) error {
	if len(build.Command) == 0 {
		return fmt.Errorf("%w: build.command %w", shiperrors.ErrConfigInvalidBuild, shiperrors.ErrEmptyValue)
	}
	if build.Timeout < 0 {
		return fmt.Errorf("%w: build.timeout %s: %w", shiperrors.ErrConfigInvalidBuild, build.Timeout, shiperrors.ErrValueOutOfRange)
	}
	return nil
}

func validateService(service *ServiceConfig) error {
	// Either a unit name for the default systemctl restart, or an explicit
	// restart vector.
	if service.Name == "" && len(service.RestartCommand) == 0 {
		return fmt.Errorf("%w: service.name %w", shiperrors.ErrConfigInvalidService, shiperrors.ErrEmptyValue)
	}
	return nil
}
