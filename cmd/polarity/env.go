package main

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"
	"github.com/subosito/gotenv"
)

// loadEnv reads an optional env file. Variables already set in the process
// environment win.
func loadEnv(path string) {
	if err := gotenv.Load(path); err != nil {
		slog.Debug("no env file found, using OS environment", slog.String("path", path))
	}
}

// initLogger installs a tint handler on stderr so reports on stdout stay
// clean.
func initLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  verbose,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
