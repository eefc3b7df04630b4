package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override CLI flag defaults.
const (
	EnvDBPath   = "LABYRINTH_DB"
	EnvFPS      = "LABYRINTH_FPS"
	EnvSeed     = "LABYRINTH_SEED"
	EnvLogLevel = "LABYRINTH_LOG_LEVEL"
	EnvConfig   = "LABYRINTH_CONFIG"
)

// Env holds overrides read from the environment. Zero values mean unset.
type Env struct {
	DBPath     string
	FPS        int
	Seed       int64
	LogLevel   string
	ConfigPath string
}

// LoadEnv loads the given .env files (./.env when none are given) into the
// process environment and reads the LABYRINTH_* variables.
// Missing files are not an error; variables already set take precedence.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var loadErr error
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil && loadErr == nil {
			loadErr = err
		}
	}
	return ReadEnv(), loadErr
}

// ReadEnv reads the LABYRINTH_* variables from the process environment.
// Malformed numbers are ignored.
func ReadEnv() Env {
	env := Env{
		DBPath:     os.Getenv(EnvDBPath),
		LogLevel:   os.Getenv(EnvLogLevel),
		ConfigPath: os.Getenv(EnvConfig),
	}
	if v, err := strconv.Atoi(os.Getenv(EnvFPS)); err == nil && v > 0 {
		env.FPS = v
	}
	if v, err := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64); err == nil {
		env.Seed = v
	}
	return env
}
