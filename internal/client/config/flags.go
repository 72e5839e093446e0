package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/pointquest-admin/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   API base URL
//	-t int      request timeout in seconds
//	-s string   local session database path
//
// args is filtered with flagx.FilterArgs first so flags owned by other
// layers (-c, -e) do not interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s"})

	fs := flag.NewFlagSet("pointquest-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StateDBPath, "s", cfg.StateDBPath, "local session database path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only touch the timeout when -t was given, to keep sub-second values
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
