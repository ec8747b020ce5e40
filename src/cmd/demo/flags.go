package main

import (
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	configFile  = flag.String("config", "", "Config file path")
	filterSpec  = flag.String("filter", "", "Filter spec, e.g. \"debug,demo::net=trace\" (overrides ALTO_FILTER)")
	showVersion = flag.Bool("version", false, "Show version information")
)

func init() {
	flag.Usage = customUsage
}

func customUsage() {
	fmt.Fprintf(os.Stderr, "alto demo - exercises the log sinks\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  -config string\n\tConfig file path\n")
	fmt.Fprintf(os.Stderr, "  -filter string\n\tFilter spec (overrides ALTO_FILTER)\n")
	fmt.Fprintf(os.Stderr, "  -version\n\tShow version information\n")

	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  # Default terminal output, everything from the demo targets\n")
	fmt.Fprintf(os.Stderr, "  %s -filter \"trace,demo=trace\"\n\n", os.Args[0])

	fmt.Fprintf(os.Stderr, "  # Terminal plus files per config\n")
	fmt.Fprintf(os.Stderr, "  %s -config alto.toml\n", os.Args[0])
}
