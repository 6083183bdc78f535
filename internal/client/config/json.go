package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/homefinder/internal/flagx"
	"github.com/dmitrijs2005/homefinder/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value so a partial file only
// overrides what it names.
type JsonConfig struct {
	DatabasePath     *string         `json:"database_path"`
	StorageDriver    *string         `json:"storage_driver"`
	RedisURL         *string         `json:"redis_url"`
	SimulatedLatency *timex.Duration `json:"simulated_latency"`
	ResetLatency     *timex.Duration `json:"reset_latency"`
	StrictAuth       *bool           `json:"strict_auth"`
	TokenSecret      *string         `json:"token_secret"`
	TokenValidity    *timex.Duration `json:"token_validity"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.StorageDriver, jc.StorageDriver)
	setIf(&cfg.RedisURL, jc.RedisURL)
	setIf(&cfg.StrictAuth, jc.StrictAuth)
	setIf(&cfg.TokenSecret, jc.TokenSecret)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)

	if jc.SimulatedLatency != nil {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
	if jc.ResetLatency != nil {
		cfg.ResetLatency = jc.ResetLatency.Duration
	}
	if jc.TokenValidity != nil {
		cfg.TokenValidity = jc.TokenValidity.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
