package config

import (
	"os"
	"strconv"
)

// Config holds the settings of a dirsearch run. Load fills it from
// DIRSEARCH_* environment variables; command-line flags override it.
type Config struct {
	Index  IndexConfig
	Search SearchConfig
	Log    LogConfig
}

type IndexConfig struct {
	Workers           int
	DuplicateDistance int
}

type SearchConfig struct {
	Limit       int
	QuitToken   string
	Prompt      string
	CacheSize   int
	Suggestions int
	// Interactive enables the terminal prompt with completion when stdin
	// is a terminal.
	Interactive bool
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	return &Config{
		Index: IndexConfig{
			Workers:           GetIntEnv("DIRSEARCH_WORKERS", 4),
			DuplicateDistance: GetIntEnv("DIRSEARCH_DUPLICATE_DISTANCE", 3),
		},
		Search: SearchConfig{
			Limit:       GetIntEnv("DIRSEARCH_LIMIT", 10),
			QuitToken:   GetStringEnv("DIRSEARCH_QUIT_TOKEN", ":quit"),
			Prompt:      GetStringEnv("DIRSEARCH_PROMPT", "search> "),
			CacheSize:   GetIntEnv("DIRSEARCH_CACHE_SIZE", 256),
			Suggestions: GetIntEnv("DIRSEARCH_SUGGESTIONS", 8),
			Interactive: GetBoolEnv("DIRSEARCH_INTERACTIVE", true),
		},
		Log: LogConfig{
			Level: GetStringEnv("DIRSEARCH_LOG_LEVEL", "warn"),
		},
	}
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
