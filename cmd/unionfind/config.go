package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

// Environment variables understood by the binary.
const (
	envLogLevel = "UNIONFIND_LOG_LEVEL"
	envSeed     = "UNIONFIND_SEED"
	envFile     = ".env"
)

// standardFormat prints time, file, level and sequence number, colored.
const standardFormat = `%{color}[%{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]%{color:reset} %{message}`

var log = logging.MustGetLogger("unionfind")

type config struct {
	LogLevel logging.Level
	Seed     int64
}

// loadConfig reads .env (if present) and then the process environment.
// Variables already set in the environment take precedence over .env.
func loadConfig() (config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	return configFromEnv(os.Getenv)
}

// configFromEnv builds a config from a lookup function, applying defaults:
// INFO level and seed 1.
func configFromEnv(getenv func(string) string) (config, error) {
	cfg := config{LogLevel: logging.INFO, Seed: 1}

	if v := getenv(envLogLevel); v != "" {
		lvl, err := logging.LogLevel(v)
		if err != nil {
			return config{}, fmt.Errorf("%s=%q: %w", envLogLevel, v, err)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("%s=%q: %w", envSeed, v, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// setupLogging routes the package logger to stderr with standardFormat.
func setupLogging(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(standardFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
