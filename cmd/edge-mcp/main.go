package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/canny-edge-mcp/internal/canny"
	"github.com/ironsheep/canny-edge-mcp/internal/config"
	"github.com/ironsheep/canny-edge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edge-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edge-mcp - MCP server for Canny edge detection")
			fmt.Println()
			fmt.Println("Usage: edge-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug|info|warn|error   Log level (default warn)\n", config.EnvLogLevel)
			fmt.Printf("  %s=N                          Goroutines per detector stage\n", config.EnvWorkers)
			fmt.Printf("  %s=0.2                  Default low threshold\n", config.EnvThresholdLow)
			fmt.Printf("  %s=0.3                 Default high threshold\n", config.EnvThresholdHigh)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "edge-mcp: %v\n", err)
		os.Exit(2)
	}

	// Log to stderr; stdout carries the MCP protocol.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	canny.SetLogger(logger)

	logger.Info("starting", "version", Version, "built", BuildTime, "commit", GitCommit,
		"workers", cfg.Workers, "threshold_low", cfg.Thresholds.Low, "threshold_high", cfg.Thresholds.High)

	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
