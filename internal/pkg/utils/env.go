package utils

import (
	"log"
	"os"
	"strconv"
)

// GetEnvString returns the value of key, or defaultValue when the variable is
// unset.
func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// GetEnvInt parses key as an integer. Unset or unparseable values fall back to
// defaultValue so a typo in the environment cannot keep the server from
// starting.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %v, using default", key, err)
		return defaultValue
	}
	return parsed
}

// GetEnvBool parses key with strconv.ParseBool semantics, falling back to
// defaultValue when unset or unparseable.
func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid value for %s: %v, using default", key, err)
		return defaultValue
	}
	return parsed
}
