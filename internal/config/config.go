// Package config provides configuration management for shipdog with layered
// precedence.
//
// Configuration sources are loaded in the following order (highest precedence
// first):
//  1. Environment variables (SHIPDOG_* prefix)
//  2. Project config (.shipdog/config.yaml)
//  3. Global config (~/.shipdog/config.yaml)
//  4. Built-in defaults
//
// Each higher level overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "time"

// Config is the root configuration structure for shipdog.
type Config struct {
	// Repo describes the tracked source checkout.
	Repo RepoConfig `yaml:"repo" mapstructure:"repo"`

	// Build describes how the artifact is rebuilt.
	Build BuildConfig `yaml:"build" mapstructure:"build"`

	// Service describes the managed service restarted after a build.
	Service ServiceConfig `yaml:"service" mapstructure:"service"`

	// Audit describes where deploy attempts are recorded.
	Audit AuditConfig `yaml:"audit" mapstructure:"audit"`

	// Listener configures the diagnostic webhook listener.
	Listener ListenerConfig `yaml:"listener" mapstructure:"listener"`
}

// RepoConfig describes the tracked source repository.
type RepoConfig struct {
	// Dir is the working directory of the managed checkout.
	// Default: "/root/telephony-forwarder"
	Dir string `yaml:"dir" mapstructure:"dir"`

	// Remote is the git remote checked for upstream commits.
	// Default: "origin"
	Remote string `yaml:"remote" mapstructure:"remote"`
}

// BuildConfig describes the build step.
type BuildConfig struct {
	// Command is the build argument vector, executed in Repo.Dir.
	// Default: ["go", "build", "-o", "app", "./cmd"]
	Command []string `yaml:"command" mapstructure:"command"`

	// Timeout bounds one build invocation. Zero disables the timeout.
	// Default: 10 minutes
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ServiceConfig describes the managed service.
type ServiceConfig struct {
	// Name is the systemd unit restarted after a successful build.
	// Default: "telephony-forwarder"
	Name string `yaml:"name" mapstructure:"name"`

	// RestartCommand overrides the restart argument vector. Empty means
	// ["systemctl", "restart", Name].
	RestartCommand []string `yaml:"restart_command" mapstructure:"restart_command"`
}

// RestartArgs returns the argument vector used to restart the service.
func (s *ServiceConfig) RestartArgs() []string {
	if len(s.RestartCommand) > 0 {
		return s.RestartCommand
	}
	return []string{"systemctl", "restart", s.Name}
}

// AuditConfig describes the deploy audit trail.
type AuditConfig struct {
	// LogPath is the append-only audit log location.
	// Default: "/var/log/telephony-forwarder/deploy.log"
	LogPath string `yaml:"log_path" mapstructure:"log_path"`
}

// ListenerConfig describes the diagnostic webhook listener.
type ListenerConfig struct {
	// Port is the TCP port the listener binds.
	// Default: 9000
	Port int `yaml:"port" mapstructure:"port"`
}
