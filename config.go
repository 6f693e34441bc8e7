package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds process settings. Environment variables provide defaults and
// command-line flags override them.
type Config struct {
	OutputDir string
	HTTPAddr  string
	LogLevel  string
	LogFormat string
}

func loadConfig() Config {
	return Config{
		OutputDir: getEnv("PLOTCHART_OUTPUT_DIR", ""),
		HTTPAddr:  getEnv("PLOTCHART_HTTP_ADDR", ":8080"),
		LogLevel:  getEnv("PLOTCHART_LOG_LEVEL", "info"),
		LogFormat: getEnv("PLOTCHART_LOG_FORMAT", "text"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// newLogger builds the process logger. It always writes to w (stderr in
// practice) since stdout carries MCP frames.
func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (must be text or json)", cfg.LogFormat)
	}
}
