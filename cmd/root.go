package cmd

import (
	"strings"

	initCmd "skylift/cmd/init"
	"skylift/cmd/version"
	"skylift/internal/config"
	"skylift/internal/logging"

	"github.com/spf13/cobra"
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	var (
		logLevel   string
		configFile string
	)

	rootCmd := &cobra.Command{
		Use:   "skylift",
		Short: "Skylift - provision cloud application-hosting projects",
		Long: `Skylift is a command-line tool for provisioning and configuring
cloud application-hosting projects in a local workspace.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfig(false, cmd); err != nil {
				return err
			}

			// Set config file if specified
			if configFile != "" {
				if err := config.SetConfigFile(configFile); err != nil {
					return err
				}
			}

			// Set log format
			logFormat := logging.Text
			if config.Config.LogFormat == "json" {
				logFormat = logging.JSON
			}

			// Set log level
			var level logging.Level
			switch strings.ToUpper(logLevel) {
			case "DEBUG":
				level = logging.DEBUG
			case "INFO":
				level = logging.INFO
			case "WARN":
				level = logging.WARN
			case "ERROR":
				level = logging.ERROR
			default:
				level = logging.INFO
			}

			// Configure logger
			logging.Configure(logging.LogConfig{
				Level:  level,
				Format: logFormat,
			})

			config.LogConfigurationSources(level == logging.DEBUG, cmd)
			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&config.Config.Profile, "profile", "p", "default", "AWS profile to use")
	rootCmd.PersistentFlags().StringVar(&config.Config.LogFormat, "log-format", "text", "Log output format (text or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO",
		"Set logging level (DEBUG, INFO, WARN, ERROR)")

	// Add commands
	rootCmd.AddCommand(initCmd.NewInitCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	return rootCmd.Execute()
}
