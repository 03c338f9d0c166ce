package config

import (
	"fmt"
	"os"
	"strings"
)

// Get returns the value of an environment variable, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Require returns the value of an environment variable or an error when it
// is unset or blank. Callers invoke it at the point of first use, so a
// deployment missing a value it never exercises still starts.
func Require(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("config: %s is required", key)
	}
	return v, nil
}
