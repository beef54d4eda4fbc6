package config

// GlobalConfig holds the global configuration for the application
type GlobalConfig struct {
	// Profile is the AWS profile to use
	Profile string

	// LogFormat is the format for logging
	LogFormat string
}

// Config is the global configuration instance
var Config = &GlobalConfig{
	Profile: "default",
}
