package app

import (
	"fmt"
	"maps"
	"runtime"
	"slices"
	"strings"
)

// Windows environment variable names are case-insensitive.
var envCaseInsensitive = runtime.GOOS == "windows"

type matchedOverride struct {
	EnvOverride
	key string
}

// envKey returns name in the form used to compare variable names.
func envKey(name string) string {
	if envCaseInsensitive {
		return strings.ToUpper(name)
	}
	return name
}

// lookupOverride finds the override for an environment variable name,
// honoring the platform's name comparison rules. An exact match wins;
// otherwise the first case-insensitive match in sorted key order does.
func lookupOverride(overrides map[string]EnvOverride, name string) (matchedOverride, bool) {
	if o, ok := overrides[name]; ok {
		return matchedOverride{EnvOverride: o, key: name}, true
	}
	if !envCaseInsensitive {
		return matchedOverride{}, false
	}
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if strings.EqualFold(key, name) {
			return matchedOverride{EnvOverride: overrides[key], key: key}, true
		}
	}
	return matchedOverride{}, false
}

// ValidateEnvOverrides rejects override names that refer to the same
// variable under the platform's rules, such as "Path" and "PATH" on Windows.
func ValidateEnvOverrides(overrides map[string]EnvOverride) error {
	seen := make(map[string]string, len(overrides))
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		k := envKey(name)
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w: environment overrides %q and %q name the same variable", ErrInvalidInput, prev, name)
		}
		seen[k] = name
	}
	return nil
}

// ParseEnvAssignment splits a NAME=VALUE string into an override.
func ParseEnvAssignment(s string) (string, EnvOverride, bool) {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", EnvOverride{}, false
	}
	return name, SetEnv(value), true
}
