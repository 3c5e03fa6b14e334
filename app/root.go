// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Directory holding main.toml")
}

var (
	configPath string // Path to the configuration directory

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "nosytlabs",
		Short: "NosytLabs serves the NosytLabs website",
		Long: `NosytLabs serves the NosytLabs website: service pages, the blog,
the passive income calculator, the live stream schedule and the contact form.
It can also export the public pages as static files.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up logging.
func loadConfig() error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err //nolint:wrapcheck
	}

	return logger.Init(cfg.Log) //nolint:wrapcheck
}
