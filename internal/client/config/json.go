package config

import (
	"encoding/json"
	"os"

	"github.com/aahadaazar/patients-app/internal/flagx"
	"github.com/aahadaazar/patients-app/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given either as strings like "10s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	SessionStorePath string         `json:"session_store_path"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. With no flag present nothing is loaded. Read or
// unmarshal errors panic; config must be correct if supplied at all.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Std()
	}
	if jc.SessionStorePath != "" {
		cfg.SessionStorePath = jc.SessionStorePath
	}
}
