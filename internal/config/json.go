package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a configuration file whose layout mirrors the json tags
// of [StructuredConfig]:
//
//	{
//	  "app":     {"passphrase": "", "log_level": "debug", "json_logs": false},
//	  "source":  {"config_path": "", "sessions_dir": "", "suffix": ".ini"},
//	  "storage": {"db": {"dsn": "creds.db"}, "loot": {"dir": "loot", "disabled": false}},
//	  "workers": {"concurrency": 4}
//	}
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}
