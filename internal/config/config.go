// Package config handles configuration management for agentmux.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the agentmux CLI.
type Config struct {
	// DefaultMode is the coordination mode used when --mode is not given.
	DefaultMode string

	// MaxParallel caps concurrent activations in parallel mode (0 = no limit).
	MaxParallel int

	// EmitEvents enables NDJSON lifecycle events on stdout.
	EmitEvents bool

	// Invoker holds subprocess invoker settings.
	Invoker InvokerConfig

	// Debug enables verbose logging.
	Debug bool
}

// InvokerConfig holds settings for the subprocess agent invoker.
type InvokerConfig struct {
	// Command is the program run once per agent activation.
	Command string

	// Args are passed to the command before the agent id.
	Args []string

	// WorkDir is the working directory for the command.
	WorkDir string

	// Timeout bounds a single activation (0 = no timeout).
	Timeout time.Duration
}

// Load reads configuration from viper and environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DefaultMode: getStringOrDefault("default_mode", "sequential"),
		MaxParallel: getIntOrDefault("max_parallel", 0),
		EmitEvents:  viper.GetBool("emit_events"),
		Debug:       os.Getenv("AGENTMUX_DEBUG") == "1",

		Invoker: InvokerConfig{
			Command: getStringOrDefault("invoker.command", "fiber-agent"),
			Args:    viper.GetStringSlice("invoker.args"),
			WorkDir: getStringOrDefault("invoker.workdir", ""),
			Timeout: getDurationOrDefault("invoker.timeout", 0),
		},
	}

	return cfg, nil
}

// getIntOrDefault returns viper int value or default if not set.
func getIntOrDefault(key string, defaultVal int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return defaultVal
}

// getStringOrDefault returns viper string value or default if not set.
func getStringOrDefault(key string, defaultVal string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultVal
}

// getDurationOrDefault returns viper duration value or default if not set.
func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	return defaultVal
}
