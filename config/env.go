package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envValue returns the trimmed value of key. Unset and blank variables count as missing.
func envValue(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

// parseEnv falls back to defaultVal when key is missing or parse rejects it.
func parseEnv[T any](key string, defaultVal T, parse func(string) (T, error)) T {
	raw, ok := envValue(key)
	if !ok {
		return defaultVal
	}
	value, err := parse(raw)
	if err != nil {
		return defaultVal
	}
	return value
}

func getEnvAsString(key string, defaultVal string) string {
	return parseEnv(key, defaultVal, func(s string) (string, error) { return s, nil })
}

func getEnvAsInt(key string, defaultVal int) int {
	return parseEnv(key, defaultVal, strconv.Atoi)
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	return parseEnv(key, defaultVal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func getEnvAsBool(key string, defaultVal bool) bool {
	return parseEnv(key, defaultVal, strconv.ParseBool)
}

// getEnvAsTimeDuration accepts Go duration syntax ("15s", "5m") or a bare number of seconds.
func getEnvAsTimeDuration(key string, defaultVal time.Duration) time.Duration {
	return parseEnv(key, defaultVal, func(s string) (time.Duration, error) {
		if seconds, err := strconv.Atoi(s); err == nil {
			return time.Duration(seconds) * time.Second, nil
		}
		return time.ParseDuration(s)
	})
}

// getEnvAsSlice splits a comma separated list, dropping empty entries.
func getEnvAsSlice(key string, defaultVal []string) []string {
	return parseEnv(key, defaultVal, func(s string) ([]string, error) {
		var out []string
		for part := range strings.SplitSeq(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	})
}
