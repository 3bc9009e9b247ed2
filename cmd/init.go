package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/internal/config"
)

// initCmd: cfilter init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigurationFile(cmd.OutOrStdout(), cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		return nil
	},
}

func initConfigurationFile(w io.Writer, configurationPath string) error {
	if configurationPath == "" {
		configurationPath = config.DefaultPath
	}
	if err := config.Write(configurationPath, config.Default()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Configuration file created/updated: %s\n", configurationPath)
	return nil
}
