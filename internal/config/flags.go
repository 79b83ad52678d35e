package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses command-line flags from args into a [StructuredConfig].
// Only explicitly provided flags produce non-zero fields.
//
// Flags:
//
//	-config-path SecureCRT "Config Path" (sessions are read from <path>/Sessions)
//	-sessions-dir sessions directory, overrides -config-path
//	-suffix session file suffix (default .ini)
//	-passphrase SecureCRT configuration passphrase
//	-d credential database DSN (SQLite path or postgres:// URL)
//	-loot-dir directory for the session table file
//	-no-loot do not write the session table file
//	-workers number of session files decoded in parallel
//	-log-level debug|info|warn|error
//	-json-logs emit JSON log lines
//	-list print stored credentials and exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("securecrt-dump", flag.ContinueOnError)
	fs.StringVar(&cfg.Source.ConfigPath, "config-path", "", "SecureCRT config path")
	fs.StringVar(&cfg.Source.SessionsDir, "sessions-dir", "", "Sessions directory (overrides -config-path)")
	fs.StringVar(&cfg.Source.Suffix, "suffix", "", "Session file suffix")
	fs.StringVar(&cfg.App.Passphrase, "passphrase", "", "SecureCRT configuration passphrase")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.BoolVar(&cfg.App.JSONLogs, "json-logs", false, "Emit JSON log lines")
	fs.BoolVar(&cfg.App.List, "list", false, "Print stored credentials and exit")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Credential database DSN")
	fs.StringVar(&cfg.Storage.Loot.Dir, "loot-dir", "", "Loot directory")
	fs.BoolVar(&cfg.Storage.Loot.Disabled, "no-loot", false, "Do not write the loot file")
	fs.IntVar(&cfg.Workers.Concurrency, "workers", 0, "Parallel decoders")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
