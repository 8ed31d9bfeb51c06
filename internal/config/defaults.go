package config

import (
	"github.com/spf13/viper"

	"github.com/calleventhub/shipdog/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
// These defaults mirror the host layout the orchestrator was written for;
// any real deployment overrides them in config files or environment.
func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			// Dir: where the managed checkout lives on the deploy host.
			Dir: "/root/telephony-forwarder",

			// Remote: "origin" is the standard git remote name.
			Remote: constants.DefaultRemote,
		},
		Build: BuildConfig{
			// Command: the forwarder builds a single binary from ./cmd.
			Command: []string{"go", "build", "-o", "app", "./cmd"},

			// Timeout: generous bound for a cold module cache.
			Timeout: constants.DefaultBuildTimeout,
		},
		Service: ServiceConfig{
			Name: constants.DefaultServiceName,
		},
		Audit: AuditConfig{
			LogPath: constants.DefaultAuditLogPath,
		},
		Listener: ListenerConfig{
			Port: constants.DefaultListenerPort,
		},
	}
}

// setDefaults registers the built-in defaults with a Viper instance so
// config files and environment variables can override them per key.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("repo.dir", defaults.Repo.Dir)
	v.SetDefault("repo.remote", defaults.Repo.Remote)
	v.SetDefault("build.command", defaults.Build.Command)
	v.SetDefault("build.timeout", defaults.Build.Timeout)
	v.SetDefault("service.name", defaults.Service.Name)
	v.SetDefault("service.restart_command", defaults.Service.RestartCommand)
	v.SetDefault("audit.log_path", defaults.Audit.LogPath)
	v.SetDefault("listener.port", defaults.Listener.Port)
}
