package main

import (
	"flag"

	"Emberwick/internal/server"
)

func main() {
	addr := flag.String("addr", "", "address to listen on (e.g., 127.0.0.1:8080), overrides EMBERWICK_ADDR")
	script := flag.String("script", "", "path to authored dialogue script YAML, overrides EMBERWICK_SCRIPT")
	logLevel := flag.String("log-level", "", "log level (debug|info|warn|error), overrides EMBERWICK_LOG_LEVEL")
	flag.Parse()

	cfg := server.MustLoadConfig()
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *script != "" {
		cfg.ScriptPath = *script
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	server.StartApp(cfg)
}
