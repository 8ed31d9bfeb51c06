package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Validate(nil), shiperrors.ErrConfigNil)
}

func TestValidate_FieldErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		sentinel error
	}{
		{
			name:     "empty repo dir",
			mutate:   func(c *Config) { c.Repo.Dir = "" },
			sentinel: shiperrors.ErrConfigInvalidRepo,
		},
		{
			name:     "empty remote",
			mutate:   func(c *Config) { c.Repo.Remote = "" },
			sentinel: shiperrors.ErrConfigInvalidRepo,
		},
		{
			name:     "empty build command",
			mutate:   func(c *Config) { c.Build.Command = nil },
			sentinel: shiperrors.ErrConfigInvalidBuild,
		},
		{
			name:     "negative build timeout",
			mutate:   func(c *Config) { c.Build.Timeout = -time.Second },
			sentinel: shiperrors.ErrConfigInvalidBuild,
		},
		{
			name: "no service name and no restart command",
			mutate: func(c *Config) {
				c.Service.Name = ""
				c.Service.RestartCommand = nil
			},
			sentinel: shiperrors.ErrConfigInvalidService,
		},
		{
			name:     "empty audit log path",
			mutate:   func(c *Config) { c.Audit.LogPath = "" },
			sentinel: shiperrors.ErrConfigInvalidAudit,
		},
		{
			name:     "listener port zero",
			mutate:   func(c *Config) { c.Listener.Port = 0 },
			sentinel: shiperrors.ErrConfigInvalidListener,
		},
		{
			name:     "listener port too large",
			mutate:   func(c *Config) { c.Listener.Port = 70000 },
			sentinel: shiperrors.ErrConfigInvalidListener,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tc.sentinel)
		})
	}
}

func TestValidate_RestartCommandWithoutName(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Service.Name = ""
	cfg.Service.RestartCommand = []string{"sv", "restart", "forwarder"}
	assert.NoError(t, Validate(cfg))
}

func TestServiceConfig_RestartArgs(t *testing.T) {
	t.Parallel()

	t.Run("defaults to systemctl restart", func(t *testing.T) {
		t.Parallel()
		s := ServiceConfig{Name: "telephony-forwarder"}
		assert.Equal(t, []string{"systemctl", "restart", "telephony-forwarder"}, s.RestartArgs())
	})

	t.Run("explicit vector wins", func(t *testing.T) {
		t.Parallel()
		s := ServiceConfig{
			Name:           "ignored",
			RestartCommand: []string{"sv", "restart", "forwarder"},
		}
		assert.Equal(t, []string{"sv", "restart", "forwarder"}, s.RestartArgs())
	})
}
