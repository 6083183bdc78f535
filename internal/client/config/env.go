package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/homefinder/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with HOMEFINDER_* variables. Values from the dotenv
// file are only used for variables the process environment does not set.
// An explicit -env file must exist; the implicit ./.env is optional.
func parseEnv(cfg *Config, args []string) error {
	path := flagx.EnvFilePath(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	fileVars, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		fileVars = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str("HOMEFINDER_DB", &cfg.DatabasePath)
	str("HOMEFINDER_STORAGE", &cfg.StorageDriver)
	str("HOMEFINDER_REDIS_URL", &cfg.RedisURL)
	str("HOMEFINDER_TOKEN_SECRET", &cfg.TokenSecret)
	str("HOMEFINDER_LOG_LEVEL", &cfg.LogLevel)
	str("HOMEFINDER_LOG_FORMAT", &cfg.LogFormat)

	if err := dur("HOMEFINDER_LATENCY", &cfg.SimulatedLatency); err != nil {
		return err
	}
	if err := dur("HOMEFINDER_RESET_LATENCY", &cfg.ResetLatency); err != nil {
		return err
	}
	if err := dur("HOMEFINDER_TOKEN_VALIDITY", &cfg.TokenValidity); err != nil {
		return err
	}

	if v, ok := lookup("HOMEFINDER_STRICT_AUTH"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("HOMEFINDER_STRICT_AUTH: %w", err)
		}
		cfg.StrictAuth = b
	}
	return nil
}
