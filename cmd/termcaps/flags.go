// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --backend, --verbose, --password, --spin, --prefix, --version

package main

import (
	"flag"
	"time"
)

type cliArgs struct {
	config   string
	backend  string
	verbose  bool
	password bool
	spin     time.Duration
	prefix   string
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.config, "config", "", "Settings file (default: ~/.termrt/config.yaml merged with .termrt/config.yaml)")
	flag.StringVar(&args.backend, "backend", "", "Force a capability backend (native-posix, native-windows, hosted-posix, hosted-windows, fallback)")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.password, "password", false, "Prompt for a secret with echo disabled")
	flag.DurationVar(&args.spin, "spin", 0, "Show a spinner with the cursor hidden for this long")
	flag.StringVar(&args.prefix, "prefix", "", "Prefix every printed line")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
