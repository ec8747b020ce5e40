package main

import (
	"flag"
	"fmt"
	"os"

	"alto/src/config"
	"alto/src/filter"
	"alto/src/logger"
	"alto/src/version"
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if *filterSpec != "" {
		os.Setenv(filter.EnvVar, *filterSpec)
	}

	configPath := *configFile
	if configPath == "" {
		configPath = config.ConfigPath()
	}

	cfg, err := config.Load(configPath, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	s, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build sinks: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Install(s); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to install logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Flush()

	logger.Trace("demo", "starting up, version %s", version.Short())
	logger.Debug("demo::net", "listening on %s", "127.0.0.1:8080")
	logger.Info("demo", "ready")
	logger.Warn("demo::net", "peer %s is slow", "10.0.0.7")
	logger.Error("demo::db", "connection lost: %v", os.ErrDeadlineExceeded)
}
