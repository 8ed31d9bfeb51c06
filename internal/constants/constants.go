// Package constants provides centralized constant values used throughout shipdog.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by shipdog for organizing its own data.
const (
	// ShipdogHome is the hidden directory name where shipdog stores its data.
	// This directory is created in the user's home directory.
	ShipdogHome = ".shipdog"

	// LogsDir is the directory name where the CLI's own log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the file name of the rotating CLI log.
	CLILogFileName = "shipdog.log"

	// ConfigFileName is the name of the YAML configuration file, looked up in
	// both the global and the project config directory.
	ConfigFileName = "config.yaml"
)

// Deployment defaults. Projects override these in .shipdog/config.yaml.
const (
	// DefaultRemote is the git remote checked for upstream commits.
	DefaultRemote = "origin"

	// DefaultServiceName is the systemd unit restarted after a successful build.
	DefaultServiceName = "telephony-forwarder"

	// DefaultAuditLogPath is where deploy attempts are recorded.
	DefaultAuditLogPath = "/var/log/telephony-forwarder/deploy.log"

	// DefaultBuildTimeout bounds a single build command invocation.
	// Zero disables the timeout.
	DefaultBuildTimeout = 10 * time.Minute
)

// DefaultListenerPort is the port the diagnostic webhook listener binds.
const DefaultListenerPort = 9000

// Log rotation settings for the CLI's own log file (not the audit log,
// which is append-only by contract).
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 30
	LogCompress   = true
)
