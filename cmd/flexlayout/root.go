package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

// settings is the resolved configuration shared by every subcommand.
type settings struct {
	cfg config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "flexlayout",
		Short:         "Compute flexbox layouts from YAML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return debug.InitFromEnv()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a flexlayout config file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newComputeCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings reads the config file and applies the persistent flags on top.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (settings, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return settings{}, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := config.Validate(&cfg); err != nil {
		return settings{}, err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return settings{}, err
	}
	return settings{cfg: cfg, log: log}, nil
}
