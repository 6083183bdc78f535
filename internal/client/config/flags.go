package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/homefinder/internal/flagx"
)

var knownFlags = []string{"-d", "-s", "-r", "-l", "-strict", "-log-level", "-log-format"}

// parseFlags populates Config fields from command-line flags. Arguments not
// in knownFlags are filtered out first so -c and -env do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("homefinder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.StorageDriver, "s", cfg.StorageDriver, "storage driver: sqlite, memory or redis")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis url")
	fs.DurationVar(&cfg.SimulatedLatency, "l", cfg.SimulatedLatency, "simulated login/register latency")
	fs.BoolVar(&cfg.StrictAuth, "strict", cfg.StrictAuth, "verify credentials against registered accounts")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
