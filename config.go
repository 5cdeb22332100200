package orrery

import "os"

// WorldConfig carries environment-driven defaults for a World. Fallback values
// are used for anything unset.
type WorldConfig struct {
	Namespace string
	LogLevel  string
	LogPretty bool
}

// GetWorldConfig reads the world configuration from the environment.
func GetWorldConfig() WorldConfig {
	return WorldConfig{
		Namespace: getEnv("ORRERY_NAMESPACE", "world"),
		LogLevel:  getEnv("ORRERY_LOG_LEVEL", "info"),
		LogPretty: getEnv("ORRERY_LOG_PRETTY", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
