// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
)

// Defaults applied after all sources have been merged.
const (
	DefaultSuffix      = ".ini"
	DefaultConcurrency = 4
	DefaultLogLevel    = "info"
	DefaultLootDir     = "loot"

	// sessionsSubdir is where SecureCRT keeps one file per saved session,
	// relative to its "Config Path".
	sessionsSubdir = "Sessions"
)

// StructuredConfig is the top-level configuration container for
// securecrt-dump. It aggregates all sub-configurations and is populated by
// merging values from an optional JSON file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: key in the optional JSON configuration file.
type StructuredConfig struct {
	// App holds run-wide settings: the SecureCRT configuration passphrase
	// and logging options.
	App App `envPrefix:"APP_" json:"app"`

	// Source describes where the session files live on the target.
	Source Source `envPrefix:"SOURCE_" json:"source"`

	// Storage holds configuration for the credential database and the loot
	// directory.
	Storage Storage `envPrefix:"STORAGE_" json:"storage"`

	// Workers holds settings for the per-session decoding pool.
	Workers Workers `envPrefix:"WORKERS_" json:"workers"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds run-wide settings.
type App struct {
	// Passphrase is the configuration passphrase set when SecureCRT was
	// installed, if any. Empty means "none", which is SecureCRT's default.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE" json:"passphrase"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// JSONLogs switches log output from console format to JSON lines.
	// Env: APP_JSON_LOGS
	JSONLogs bool `env:"JSON_LOGS" json:"json_logs"`

	// List prints the credentials already stored in the database instead
	// of decoding sessions.
	// Env: APP_LIST
	List bool `env:"LIST" json:"list"`
}

// Source locates the session files.
type Source struct {
	// ConfigPath is SecureCRT's "Config Path" (the value stored under
	// HKCU\Software\VanDyke\SecureCRT on Windows). Sessions are read from
	// its Sessions subdirectory.
	// Env: SOURCE_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH" json:"config_path"`

	// SessionsDir points directly at a sessions directory and takes
	// precedence over ConfigPath.
	// Env: SOURCE_SESSIONS_DIR
	SessionsDir string `env:"SESSIONS_DIR" json:"sessions_dir"`

	// Suffix selects session files by extension.
	// Env: SOURCE_SUFFIX
	Suffix string `env:"SUFFIX" json:"suffix"`
}

// SessionsRoot returns the directory to enumerate, or "" when neither
// SessionsDir nor ConfigPath is known.
func (s Source) SessionsRoot() string {
	if s.SessionsDir != "" {
		return s.SessionsDir
	}
	if s.ConfigPath == "" {
		return ""
	}
	return filepath.Join(s.ConfigPath, sessionsSubdir)
}

// Storage groups the output backends.
type Storage struct {
	// DB holds the credential database settings.
	DB DB `envPrefix:"DB_" json:"db"`

	// Loot holds the report file settings.
	Loot Loot `envPrefix:"LOOT_" json:"loot"`
}

// DB holds connection settings for the credential database.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL uses
	// PostgreSQL, anything else is treated as an SQLite file path. Empty
	// disables credential persistence.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Loot holds settings for the rendered session table written to disk.
type Loot struct {
	// Dir is the directory the loot file is written to.
	// Env: STORAGE_LOOT_DIR
	Dir string `env:"DIR" json:"dir"`

	// Disabled turns the loot file off.
	// Env: STORAGE_LOOT_DISABLED
	Disabled bool `env:"DISABLED" json:"disabled"`
}

// Workers holds configuration for the decoding pool.
type Workers struct {
	// Concurrency is the number of session files decoded in parallel.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY" json:"concurrency"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. JSON file (path resolved from env and flags)
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//
// Defaults fill whatever is still unset.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Source.Suffix == "" {
		cfg.Source.Suffix = DefaultSuffix
	}
	if cfg.Workers.Concurrency == 0 {
		cfg.Workers.Concurrency = DefaultConcurrency
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.Loot.Dir == "" {
		cfg.Storage.Loot.Dir = DefaultLootDir
	}
}
