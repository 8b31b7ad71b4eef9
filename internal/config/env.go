package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnvironment.
const (
	EnvLogLevel  = "INVCALC_LOG_LEVEL"
	EnvLogJSON   = "INVCALC_LOG_JSON"
	EnvOutputDir = "INVCALC_OUTPUT_DIR"
	EnvCurrency  = "INVCALC_CURRENCY"
	EnvFormat    = "INVCALC_FORMAT"
)

const defaultEnvFile = ".env"

// Environment holds process-level settings. Command-line flags take precedence over these.
type Environment struct {
	LogLevel  string
	LogJSON   bool
	OutputDir string
	Currency  string
	Format    string
	// DotEnvLoaded reports whether a .env file was found and read.
	DotEnvLoaded bool
}

// LoadEnvironment reads an optional .env file (the given paths, or ./.env) and then the process environment.
// A missing .env file is not an error.
func LoadEnvironment(files ...string) (*Environment, error) {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}

	env := &Environment{}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil {
			env.DotEnvLoaded = true
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return nil, err
	}

	env.LogLevel = getEnv(EnvLogLevel, "info")
	env.LogJSON = getEnvAsBool(EnvLogJSON, false)
	env.OutputDir = getEnv(EnvOutputDir, ".")
	env.Currency = strings.ToUpper(getEnv(EnvCurrency, "USD"))
	env.Format = getEnv(EnvFormat, "console")
	return env, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
