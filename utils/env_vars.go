package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type EnvValue interface {
	string | int | bool | float64
}

func parseEnv[T EnvValue](name, raw string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		value, err := strconv.Atoi(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", name, raw))
		}
		*ptr = value
	case *bool:
		value, err := strconv.ParseBool(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", name, raw))
		}
		*ptr = value
	case *float64:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a number", name, raw))
		}
		*ptr = value
	}
	return out
}

// GetEnv reads an environment variable and parses it to the type of the
// default value. Unset or empty variables return the default; unparsable
// values panic since the process cannot run with a half-read config.
func GetEnv[T EnvValue](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	return parseEnv[T](name, raw)
}

func GetRequiredEnv[T EnvValue](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		panic(fmt.Sprintf("environment variable %s is required", name))
	}
	return parseEnv[T](name, raw)
}

func GetEnvDuration(name string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s: '%s' is not a duration", name, raw))
	}
	return value
}
