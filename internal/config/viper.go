package config

import (
	"fmt"
	"os"
	"strings"

	"skylift/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// parameterSource tracks where each parameter value came from
type parameterSource struct {
	Key    string
	Value  interface{}
	Source string
}

// getParameterSource determines where a parameter value came from (config file, env var, flag, or default)
func getParameterSource(key string, cmd *cobra.Command) parameterSource {
	flagValue := viper.Get(key)
	envKey := "SKYLIFT_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))

	// Map config keys to flag names
	flagNames := map[string]string{
		"aws.profile":    "profile",
		"app.log_format": "log-format",
		"app.log_level":  "log-level",
	}

	flagName := flagNames[key]
	if flagName == "" {
		flagName = strings.Replace(key, ".", "-", -1)
	}

	// Check if flag was set on command line - check both local and persistent flags
	if cmd != nil {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			return parameterSource{key, flagValue, "command line flag"}
		}

		current := cmd
		for current != nil {
			if f := current.PersistentFlags().Lookup(flagName); f != nil && f.Changed {
				return parameterSource{key, flagValue, "command line flag"}
			}
			current = current.Parent()
		}
	}

	// Check if value is set by environment variable
	if _, exists := os.LookupEnv(envKey); exists {
		return parameterSource{key, flagValue, "environment variable"}
	}

	// Check if value is set in config file
	if viper.GetViper().InConfig(key) {
		return parameterSource{key, flagValue, "config file"}
	}

	return parameterSource{key, flagValue, "default value"}
}

// LogConfigurationSources logs the source of each configuration parameter
func LogConfigurationSources(shouldLog bool, cmd *cobra.Command) {
	if !shouldLog {
		return
	}

	logging.Debug("Configuration parameter sources:", nil)

	params := []string{
		"aws.profile",
		"app.log_format",
		"app.log_level",
	}

	for _, param := range params {
		source := getParameterSource(param, cmd)
		logging.Debug(fmt.Sprintf("  %s = %v (from %s)", source.Key, source.Value, source.Source), nil)
	}
}

// InitConfig initializes the Viper configuration
func InitConfig(shouldLog bool, cmd *cobra.Command) error {
	// Set config name and type
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config search paths
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.skylift")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SKYLIFT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Set defaults for all configuration values
	viper.SetDefault("aws.profile", "default")
	viper.SetDefault("app.log_format", "text")
	viper.SetDefault("app.log_level", "INFO")

	// Try to read config file but don't error if not found
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a missing config file
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is okay, we'll use defaults and env vars
		if shouldLog {
			logging.Debug("No config file found, using defaults and environment variables", nil)
		}
	} else if shouldLog {
		logging.Debug("Loaded config file", map[string]interface{}{
			"path": viper.ConfigFileUsed(),
		})
	}

	return nil
}

// SetConfigFile sets a custom config file path and reloads the configuration
func SetConfigFile(configFile string) error {
	viper.SetConfigFile(configFile)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}
