package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/combfilter/internal/config"
	"github.com/gnolang/combfilter/internal/render"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile   string
	timeout   time.Duration
	verbose   bool
	colorFlag string

	logger *zap.Logger
	cfg    config.Config
)

// errFailed is returned by commands that already reported their failure
// and only need a non-zero exit status.
var errFailed = errors.New("one or more documents failed")

var rootCmd = &cobra.Command{
	Use:           "cfilter",
	Short:         "cfilter - normalize, compare and evaluate boolean range filters",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.Error("Error loading config file", zap.String("path", cfgFile), zap.Error(err))
			return err
		}
		if colorFlag != "" {
			cfg.Color = config.ColorMode(colorFlag)
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		render.SetColor(cfg.UseColor(os.Stdout))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the command line and returns the error that ended it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		fmt.Fprint(os.Stderr, render.Error("cfilter", err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the command")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always or never (overrides the config file)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(collapseCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(equivCmd)
	rootCmd.AddCommand(partialCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(watchCmd)
}
