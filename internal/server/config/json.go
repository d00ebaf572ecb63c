package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/newsgate/internal/flagx"
	"github.com/dmitrijs2005/newsgate/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Duration fields use
// timex.Duration so the file can say "30m" instead of nanoseconds.
// After unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP           string         `json:"endpoint_addr_http"`
	DatabaseDSN                string         `json:"database_dsn"`
	SecretKey                  string         `json:"secret_key"`
	SessionValidityDuration    timex.Duration `json:"session_validity_duration"`
	KeepSignedValidityDuration timex.Duration `json:"keep_signed_validity_duration"`
	SecureCookies              *bool          `json:"secure_cookies"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into cfg. When no file is configured, nothing happens.
// An unreadable or invalid file panics: a half-applied config is worse
// than a loud startup failure.
func parseJson(cfg *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		cfg.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		cfg.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.SessionValidityDuration.Std() != time.Duration(0) {
		cfg.SessionValidityDuration = c.SessionValidityDuration.Std()
	}
	if c.KeepSignedValidityDuration.Std() != time.Duration(0) {
		cfg.KeepSignedValidityDuration = c.KeepSignedValidityDuration.Std()
	}
	if c.SecureCookies != nil {
		cfg.SecureCookies = *c.SecureCookies
	}
}
